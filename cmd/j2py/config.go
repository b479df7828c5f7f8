package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sumatoshi-tech/j2py/pkg/config"
)

func configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print a starter config.yaml with j2py's default settings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := config.WriteDefault()
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), string(out))

			return nil
		},
	}
}
