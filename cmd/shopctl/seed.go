package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dheerghayush/naturals/internal/seed"
	"github.com/dheerghayush/naturals/internal/service"
)

func seedCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Replace categories, products and banners with a YAML catalog",
		Long: `Replace categories, products and banners with a YAML catalog.

Without --file the catalog bundled into the binary is used.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := seed.Load(file)
			if err != nil {
				return err
			}

			s, err := openSession(cmd)
			if err != nil {
				return err
			}
			defer s.close()

			res, err := (&service.Seeder{Store: s.store}).SeedCatalog(s.ctx, catalog)
			if err != nil {
				return fmt.Errorf("seed catalog: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d categories, %d products, %d banners\n",
				res.Message, res.Categories, res.Products, res.Banners)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "catalog YAML file (defaults to the bundled catalog)")
	return cmd
}
