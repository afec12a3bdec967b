package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/planovo/planovo-api/internal/generation"
	"github.com/spf13/cobra"
)

func newTemplatesCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List the available prompt templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := c.setup(cmd)
			if err != nil {
				return err
			}

			catalog, err := generation.NewCatalog(cfg.LLM.PromptTemplatesFile)
			if err != nil {
				return err
			}

			selected := cfg.LLM.PromptTemplate
			if selected == "" {
				selected = generation.DefaultTemplateName
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, name := range catalog.Names() {
				pt, err := catalog.Lookup(name)
				if err != nil {
					return err
				}
				marker := " "
				if name == selected {
					marker = "*"
				}
				fmt.Fprintf(tw, "%s %s\t%s\n", marker, name, pt.Description())
			}
			return tw.Flush()
		},
	}
}
