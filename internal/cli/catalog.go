package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stencil-labs/stencil/internal/catalog"
	"github.com/stencil-labs/stencil/internal/config"
)

var catalogDirFlag string

func init() {
	catalogCmd.PersistentFlags().StringVar(&catalogDirFlag, "dir", "", "Catalog directory (default: config key catalog_dir)")
	catalogCmd.AddCommand(catalogValidateCmd)
	catalogCmd.AddCommand(catalogListCmd)
	rootCmd.AddCommand(catalogCmd)
}

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect and validate entry catalogs",
}

var catalogValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a catalog index against the schema and structural rules",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog()
		if err != nil {
			return err
		}
		fmt.Printf("Catalog at %s is valid (%d entries)\n", cat.Dir, len(cat.Entries))
		return nil
	},
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog entries grouped by category",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog()
		if err != nil {
			return err
		}
		for _, category := range catalog.Categories {
			var entries []catalog.Entry
			for _, e := range cat.Entries {
				if e.Category == category {
					entries = append(entries, e)
				}
			}
			if len(entries) == 0 {
				continue
			}
			fmt.Printf("%s:\n", category)
			for _, e := range entries {
				fmt.Printf("  %-30s %-10s %s\n", e.Identifier, e.Kind, e.Priority)
			}
			fmt.Println()
		}
		return nil
	},
}

func loadCatalog() (*catalog.Catalog, error) {
	dir := catalogDirFlag
	if dir == "" {
		dir = config.CatalogDir()
	}
	if dir == "" {
		return nil, fmt.Errorf("no catalog configured; pass --dir or set the %s config key", config.KeyCatalogDir)
	}
	return catalog.Load(dir, buildVersion)
}
