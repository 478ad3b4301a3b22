package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ramanasai/mindclean/internal/version"
)

var versionShort bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if versionShort {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), version.GetShortVersion())
			return err
		}
		_, err := fmt.Fprintln(cmd.OutOrStdout(), version.GetVersionInfo())
		return err
	},
}

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Print only the version")
}
