// Package lorem provides an offline generation backend that returns
// placeholder SRS documents. It needs no credentials and is used for local
// development and tests.
package lorem

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	loremgen "github.com/bozaro/golorem"
	"github.com/planovo/planovo-api/internal/generation"
)

// ProviderName identifies this backend.
const ProviderName = "lorem"

// Generator produces markdown in the concise SRS layout filled with lorem
// ipsum text.
type Generator struct {
	mu    sync.Mutex
	gen   *loremgen.Lorem
	delay time.Duration
}

var _ generation.Generator = (*Generator)(nil)

// NewGenerator creates a lorem generator. A positive delay simulates model
// latency and is interrupted by context cancellation.
func NewGenerator(delay time.Duration) *Generator {
	return &Generator{gen: loremgen.New(), delay: delay}
}

// Name implements generation.Generator.
func (g *Generator) Name() string { return ProviderName }

// Generate implements generation.Generator. The prompt is ignored.
func (g *Generator) Generate(ctx context.Context, _ string) (string, error) {
	if g.delay > 0 {
		select {
		case <-time.After(g.delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	// golorem keeps a private rand source that is not safe for concurrent use.
	g.mu.Lock()
	defer g.mu.Unlock()

	var sb strings.Builder
	sb.WriteString("## 1. Feature Overview\n\n")
	sb.WriteString(g.gen.Paragraph(3, 5))
	sb.WriteString("\n\n## 2. Functional Requirements\n\n")
	for i := 1; i <= 4; i++ {
		fmt.Fprintf(&sb, "- FR-%d: %s\n", i, g.gen.Sentence(6, 14))
	}
	sb.WriteString("\n## 3. Non-Functional Requirements\n")
	n := 1
	for _, section := range []string{"Security", "Performance", "Usability"} {
		fmt.Fprintf(&sb, "\n### %s\n\n", section)
		for i := 0; i < 2; i++ {
			fmt.Fprintf(&sb, "- NFR-%d: %s\n", n, g.gen.Sentence(5, 12))
			n++
		}
	}
	return sb.String(), nil
}
