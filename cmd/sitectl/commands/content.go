package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"najma_site_go/services"
)

func checkContentCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "check-content",
		Short: "Validate the site content file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if file == "" {
				file = cfg.CatalogPath
			}
			if err := services.InitializeCatalog(file); err != nil {
				return err
			}

			catalog := services.SiteContent
			for _, stat := range catalog.Stats() {
				end := services.CounterTarget(stat.End)
				note := ""
				if end == 0 {
					note = "  (stays at 0)"
				}
				fmt.Printf("counter %-12s -> %s%s\n", stat.ID, services.FormatCounter(end, end), note)
			}
			fmt.Printf("%d products, %d testimonials, %d gallery images\n",
				len(catalog.Products()), len(catalog.Testimonials()), len(catalog.Gallery()))
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "content file (default CATALOG_PATH, or the embedded content)")
	return cmd
}
