package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sumatoshi-tech/j2py/pkg/version"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the j2py version",
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "j2py %s (commit %s, built %s)\n",
				version.Version, version.Commit, version.Date)

			return nil
		},
	}
}
