package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"najma_site_go/services"
)

func publishAssetsCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "publish-assets",
		Short: "Upload images and videos to the R2 bucket the page serves media from",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.R2AccountID == "" || cfg.R2BucketName == "" || cfg.R2PublicURL == "" {
				return errors.New("R2_ACCOUNT_ID, R2_BUCKET_NAME and R2_PUBLIC_URL must be set")
			}
			if dir == "" {
				dir = cfg.StaticDir
			}

			store, err := services.NewR2Storage(cfg)
			if err != nil {
				return err
			}
			if !store.IsConfigured() {
				return errors.New("R2 credentials are incomplete")
			}

			published, err := services.PublishMedia(cmd.Context(), store, dir)
			if err != nil {
				return err
			}
			for _, m := range published {
				fmt.Printf("%-50s %8d  %s\n", m.Key, m.FileSize, m.URL)
			}
			fmt.Printf("Published %d files from %s\n", len(published), dir)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "directory to publish (default STATIC_DIR)")
	return cmd
}
