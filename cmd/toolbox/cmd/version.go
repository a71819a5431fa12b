package cmd

import (
	"fmt"

	"github.com/msto63/toolbox/pkg/core/version"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			if short {
				fmt.Fprintln(out, version.Toolbox)
				return
			}
			fmt.Fprintln(out, version.String())
			fmt.Fprintf(out, "  CaseService: %s\n", version.CaseService)
			fmt.Fprintf(out, "  HTTP API:    %s\n", version.HTTPAPI)
		},
	}

	cmd.Flags().BoolVar(&short, "short", false, "print only the version number")
	return cmd
}
