package cli

import (
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, _ []string) {
		if jsonOutput {
			_ = outputJSON(cmd, map[string]string{"version": version})
			return
		}
		cmd.Printf("marquee version %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
