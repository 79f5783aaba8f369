package commands

import (
	"github.com/spf13/cobra"

	"najma_site_go/config"
)

var cfg *config.Config

// Execute runs the site maintenance CLI
func Execute() error {
	root := &cobra.Command{
		Use:          "sitectl",
		Short:        "Maintenance tasks for the Najma Al Khautar site",
		SilenceUsage: true,
	}
	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		cfg = config.Load()
	}

	root.AddCommand(snapshotCmd(), publishAssetsCmd(), checkContentCmd())
	return root.Execute()
}
