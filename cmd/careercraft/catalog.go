package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ShayCichocki/careercraft/internal/catalog"
	"github.com/ShayCichocki/careercraft/internal/config"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect or import the role catalog",
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog roles",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return runCatalogList(cmd.Context(), cmd.OutOrStdout(), cfg)
	},
}

var catalogImportCmd = &cobra.Command{
	Use:   "import <file.yaml>",
	Short: "Replace the catalog with roles from a YAML file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return runCatalogImport(cmd.Context(), cmd.OutOrStdout(), cfg, args[0])
	},
}

func init() {
	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogImportCmd)
}

func runCatalogList(ctx context.Context, out io.Writer, cfg *config.Config) error {
	store, err := catalog.Open(cfg.Catalog.Path)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := seedCatalog(ctx, store, ""); err != nil {
		return err
	}

	roles, err := store.Roles(ctx)
	if err != nil {
		return err
	}

	heading := color.New(color.FgCyan, color.Bold)
	dim := color.New(color.Faint)
	for _, r := range roles {
		fmt.Fprintf(out, "%s %s\n", heading.Sprint(r.Title), dim.Sprintf("(%s)", r.ID))
		if len(r.Skills) > 0 {
			fmt.Fprintf(out, "  skills:    %s\n", strings.Join(r.Skills, ", "))
		}
		if len(r.Interests) > 0 {
			fmt.Fprintf(out, "  interests: %s\n", strings.Join(r.Interests, ", "))
		}
	}
	fmt.Fprintf(out, "\n%d roles in %s\n", len(roles), store.Path())
	return nil
}

func runCatalogImport(ctx context.Context, out io.Writer, cfg *config.Config, path string) error {
	roles, err := catalog.LoadSeedFile(path)
	if err != nil {
		return err
	}

	store, err := catalog.Open(cfg.Catalog.Path)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Seed(ctx, roles); err != nil {
		return err
	}

	printStatus(out, "✓", fmt.Sprintf("Imported %d roles into %s", len(roles), store.Path()), color.FgGreen)
	return nil
}
