package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"najma_site_go/services"
)

func snapshotCmd() *cobra.Command {
	var (
		pageURL string
		out     string
		width   int64
		height  int64
		quality int
	)

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Capture the Open Graph preview image from a running site",
		RunE: func(cmd *cobra.Command, args []string) error {
			if pageURL == "" {
				pageURL = cfg.AppURL + "/"
			}
			opts := services.DefaultSnapshotOptions()
			opts.Width, opts.Height = width, height
			opts.Quality = quality

			if out == "" {
				out = filepath.Join(cfg.StaticDir, "images", "og-image."+opts.Extension())
			}

			img, err := services.CaptureSnapshot(cmd.Context(), pageURL, opts)
			if err != nil {
				return err
			}
			if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
				return err
			}
			if err := os.WriteFile(out, img, 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", out, err)
			}
			fmt.Printf("Snapshot of %s written to %s (%d bytes)\n", pageURL, out, len(img))
			return nil
		},
	}

	cmd.Flags().StringVar(&pageURL, "url", "", "page to capture (default APP_URL)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default <static>/images/og-image.png)")
	cmd.Flags().Int64Var(&width, "width", 1200, "viewport width")
	cmd.Flags().Int64Var(&height, "height", 630, "viewport height")
	cmd.Flags().IntVar(&quality, "quality", 0, "JPEG quality 1-100; 0 writes PNG (the page links og-image.png)")
	return cmd
}
