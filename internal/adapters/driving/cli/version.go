package cli

import (
	"runtime"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/csvnorm/internal/stages"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Printf("csvnorm version %s\n", version)
		if verboseFlag {
			cmd.Printf("go: %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
			if stageRegistry != nil {
				script := "unavailable"
				if stageRegistry.Has(stages.StageScript) {
					script = "available"
				}
				cmd.Printf("stages: %d (script normalisation %s)\n", len(stageRegistry.Names()), script)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
