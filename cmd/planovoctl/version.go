package main

import (
	"fmt"

	"github.com/planovo/planovo-api/internal/api"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s v%s\n", api.ServiceName, api.ServiceVersion)
		},
	}
}
