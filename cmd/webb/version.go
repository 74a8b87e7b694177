package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// buildInfo is shared by the version command and the root --version flag.
func buildInfo() string {
	return fmt.Sprintf("WEBB %s\ncommit: %s\nbuilt: %s\n", version, commit, date)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), buildInfo())
			return nil
		},
	}
}
