package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/planovo/planovo-api/internal/generation"
	"github.com/planovo/planovo-api/internal/platform/llm"
	"github.com/planovo/planovo-api/internal/service/srs"
	"github.com/spf13/cobra"
)

func newGenerateCmd(c *cli) *cobra.Command {
	var (
		asJSON   bool
		provider string
		template string
	)

	cmd := &cobra.Command{
		Use:   "generate [idea...]",
		Short: "Generate an SRS document for a feature idea",
		Long: `Generate runs the configured generation backend once and prints the
resulting Markdown document. The arguments are joined with spaces to form
the feature idea. With --json the HTTP response body is printed instead.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, l, err := c.setup(cmd)
			if err != nil {
				return err
			}
			if provider != "" {
				cfg.LLM.Provider = provider
			}
			if template != "" {
				cfg.LLM.PromptTemplate = template
			}

			ctx := cmd.Context()
			backend, err := llm.NewGenerator(ctx, l, cfg.LLM)
			if err != nil {
				return fmt.Errorf("failed to initialize %s backend: %w", cfg.LLM.Provider, err)
			}

			pt, err := generation.LoadTemplate(cfg.LLM.PromptTemplate, cfg.LLM.PromptTemplatesFile)
			if err != nil {
				return err
			}

			svc, err := srs.NewService(backend, pt,
				time.Duration(cfg.LLM.RequestTimeoutSeconds)*time.Second, l)
			if err != nil {
				return err
			}

			result, err := svc.Generate(ctx, strings.Join(args, " "))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(result)
			}
			_, err = fmt.Fprintln(out, result.SRSDocument)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the full result as JSON")
	cmd.Flags().StringVar(&provider, "provider", "", "Override llm.provider (gemini, openai, anthropic, lorem)")
	cmd.Flags().StringVar(&template, "template", "", "Override llm.prompt_template")
	return cmd
}
