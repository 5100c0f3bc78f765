// Package cli implements the room-image-gen commands.
package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "room-image-gen [image-id...]",
	Short: "Generate the landing page and studio images with Gemini",
	Long: `room-image-gen renders every image in the built-in catalog through the
Gemini image model and writes them to the output directory. Images that
already exist and are larger than 100KB are skipped, so an interrupted run
can simply be started again. Pass image ids to limit the run to those.`,
	Args:         cobra.ArbitraryArgs,
	SilenceUsage: true,
	RunE:         runGenerate,
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	f := rootCmd.Flags()
	f.StringVarP(&flagOut, "out", "o", "", "output directory (env OUTPUT_DIR)")
	f.IntVarP(&flagConcurrency, "concurrency", "c", 0, "requests in flight at once (env CONCURRENT)")
	f.StringVar(&flagModel, "model", "", "model name (env MODEL)")
	f.StringVar(&flagBackend, "backend", "", "rest, genai or vertex (env BACKEND)")
	f.StringVar(&flagReport, "report", "", "write a YAML run report to this file (env REPORT)")
	f.BoolVar(&flagDryRun, "dry-run", false, "list what would be generated without calling the API")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(versionCmd)
}
