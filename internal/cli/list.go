package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"example/room-image-gen/internal/catalog"
)

var listIDsOnly bool

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "Print the image catalog as YAML",
	RunE: func(cmd *cobra.Command, args []string) error {
		entries := catalog.Entries()
		out := cmd.OutOrStdout()
		if listIDsOnly {
			for _, e := range entries {
				fmt.Fprintln(out, e.ID)
			}
			return nil
		}
		enc := yaml.NewEncoder(out)
		defer enc.Close()
		return enc.Encode(entries)
	},
}

func init() {
	listCmd.Flags().BoolVar(&listIDsOnly, "ids", false, "print only the image ids")
}
