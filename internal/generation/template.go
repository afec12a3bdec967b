package generation

import (
	"bytes"
	"fmt"
	"os"
	"sort"
	"strings"
	"text/template"

	"gopkg.in/yaml.v3"
)

// probeIdea is rendered into every template at load time to verify that the
// template actually places the feature idea in the prompt.
const probeIdea = "\x00feature-idea-probe\x00"

// TemplateSpec is the serialized form of a prompt template.
type TemplateSpec struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Body        string `yaml:"body"`
}

// templateFile is the layout of a prompt templates YAML file.
type templateFile struct {
	Templates []TemplateSpec `yaml:"templates"`
}

// promptData represents the data passed to the prompt template.
type promptData struct {
	FeatureIdea string
}

// PromptTemplate renders a feature idea into the instruction text sent upstream.
// It is immutable after construction and safe for concurrent use.
type PromptTemplate struct {
	name        string
	description string
	tmpl        *template.Template
}

// NewPromptTemplate parses spec and checks that it references {{.FeatureIdea}}.
func NewPromptTemplate(spec TemplateSpec) (*PromptTemplate, error) {
	name := strings.TrimSpace(spec.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: template name cannot be empty", ErrInvalidTemplate)
	}

	tmpl, err := template.New(name).Option("missingkey=error").Parse(spec.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidTemplate, name, err)
	}

	pt := &PromptTemplate{name: name, description: spec.Description, tmpl: tmpl}

	probe, err := pt.Render(probeIdea)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidTemplate, name, err)
	}
	if !strings.Contains(probe, probeIdea) {
		return nil, fmt.Errorf("%w: %s does not reference {{.FeatureIdea}}", ErrInvalidTemplate, name)
	}

	return pt, nil
}

// Name returns the template's name.
func (p *PromptTemplate) Name() string { return p.name }

// Description returns the template's one-line description.
func (p *PromptTemplate) Description() string { return p.description }

// Render substitutes featureIdea into the template.
func (p *PromptTemplate) Render(featureIdea string) (string, error) {
	var buf bytes.Buffer
	if err := p.tmpl.Execute(&buf, promptData{FeatureIdea: featureIdea}); err != nil {
		return "", fmt.Errorf("failed to execute prompt template %s: %w", p.name, err)
	}
	return buf.String(), nil
}

// Catalog is a set of named prompt templates.
type Catalog struct {
	templates map[string]*PromptTemplate
}

// NewCatalog returns a catalog holding the built-in templates, overlaid with
// the templates from the YAML file at path when path is non-empty.
func NewCatalog(path string) (*Catalog, error) {
	c := &Catalog{templates: make(map[string]*PromptTemplate, len(builtinTemplates))}

	for _, spec := range builtinTemplates {
		if err := c.add(spec); err != nil {
			return nil, err
		}
	}

	if path == "" {
		return c, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read prompt templates from %s: %v",
			ErrInvalidConfig, path, err)
	}

	var file templateFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: failed to parse prompt templates file: %v", ErrInvalidTemplate, err)
	}

	for _, spec := range file.Templates {
		if err := c.add(spec); err != nil {
			return nil, err
		}
	}

	return c, nil
}

func (c *Catalog) add(spec TemplateSpec) error {
	pt, err := NewPromptTemplate(spec)
	if err != nil {
		return err
	}
	c.templates[pt.Name()] = pt
	return nil
}

// Lookup returns the template called name.
func (c *Catalog) Lookup(name string) (*PromptTemplate, error) {
	pt, ok := c.templates[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %s)",
			ErrUnknownTemplate, name, strings.Join(c.Names(), ", "))
	}
	return pt, nil
}

// Names returns the sorted template names.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.templates))
	for name := range c.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadTemplate is a convenience for NewCatalog followed by Lookup.
func LoadTemplate(name, path string) (*PromptTemplate, error) {
	catalog, err := NewCatalog(path)
	if err != nil {
		return nil, err
	}
	if name == "" {
		name = DefaultTemplateName
	}
	return catalog.Lookup(name)
}
