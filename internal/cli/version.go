package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stencil-labs/stencil/internal/branding"
)

func init() {
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("%s %s\n", branding.CLIName(), buildVersion)
		if buildCommit != "" {
			fmt.Printf("  commit: %s\n", buildCommit)
		}
		if buildDate != "" {
			fmt.Printf("  built:  %s\n", buildDate)
		}
	},
}
