package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/stencil-labs/stencil/internal/analyze"
	"github.com/stencil-labs/stencil/internal/catalog"
	"github.com/stencil-labs/stencil/internal/config"
	"github.com/stencil-labs/stencil/internal/generate"
	"github.com/stencil-labs/stencil/internal/project"
	"github.com/stencil-labs/stencil/internal/selection"
)

var (
	newDescription string
	newDest        string
	newCatalogDir  string
	newOverwrite   bool
	newAI          bool
)

func init() {
	newCmd.Flags().StringVar(&newDescription, "description", "", "Natural-language project description (required)")
	newCmd.Flags().StringVar(&newDest, "dest", "", "Destination directory (default: ./<slug>)")
	newCmd.Flags().StringVar(&newCatalogDir, "catalog", "", "Catalog directory (default: config key catalog_dir)")
	newCmd.Flags().BoolVar(&newOverwrite, "overwrite", false, "Replace files in an existing destination")
	newCmd.Flags().BoolVar(&newAI, "ai", false, "Use the AI analyzer (falls back to keyword analysis on failure)")
	_ = newCmd.MarkFlagRequired("description")
	rootCmd.AddCommand(newCmd)
}

var newCmd = &cobra.Command{
	Use:   "new <name>",
	Short: "Generate a new project from the catalog",
	Long: `Analyze the project description, select matching catalog entries, and
materialize them into the destination directory.

Examples:
  stencil new "Orders Api" --description "A REST api for customer orders" --catalog ./catalog
  stencil new "Sensor Hub" --description "Firmware for an IoT sensor array" --dest ./sensor-hub --ai`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		catDir := newCatalogDir
		if catDir == "" {
			catDir = config.CatalogDir()
		}
		if catDir == "" {
			return fmt.Errorf("no catalog configured; pass --catalog or set the %s config key", config.KeyCatalogDir)
		}

		cat, err := catalog.Load(catDir, buildVersion)
		if err != nil {
			return err
		}

		analyzer := analyze.Resolve(analyze.Options{
			AIEnabled: newAI || config.AIEnabled(),
			Model:     config.AIModel(),
			Timeout:   config.AITimeout(),
		})
		fields, err := analyzer.Analyze(cmd.Context(), name, newDescription)
		if err != nil {
			return fmt.Errorf("analyzing project description: %w", err)
		}

		cfg, err := project.Build(fields)
		if err != nil {
			return err
		}

		dest := newDest
		if dest == "" {
			dest = filepath.Join(".", cfg.Slug)
		}
		policy := generate.PolicyFailOnConflict
		if newOverwrite {
			policy = generate.PolicyOverwrite
		}

		manifest, err := generate.Generate(generate.Options{
			Config:      cfg,
			Catalog:     cat,
			Selection:   selection.SelectAll(cfg, cat),
			Destination: dest,
			Policy:      policy,
		})
		if err != nil {
			return err
		}

		printManifest(os.Stdout, cfg, manifest)
		return nil
	},
}

func printManifest(w io.Writer, cfg *project.Config, manifest generate.Manifest) {
	fmt.Fprintf(w, "Generated %s (%s)\n", cfg.Name, cfg.Kind)
	total := 0
	for _, category := range catalog.Categories {
		paths := manifest[category]
		if len(paths) == 0 {
			continue
		}
		fmt.Fprintf(w, "\n%s:\n", category)
		for _, p := range paths {
			fmt.Fprintf(w, "  %s\n", p)
			total++
		}
	}
	if total == 0 {
		fmt.Fprintln(w, "\nNo catalog entries matched this project.")
	}
}
