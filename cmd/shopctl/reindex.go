package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dheerghayush/naturals/internal/app"
	"github.com/dheerghayush/naturals/internal/service"
)

func reindexCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reindex",
		Short: "Push every product into the Elasticsearch index",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd)
			if err != nil {
				return err
			}
			defer s.close()

			idx, err := app.OpenIndex(s.ctx, s.cfg)
			if err != nil {
				return fmt.Errorf("open index: %w", err)
			}
			if idx == nil {
				return errors.New("ES_URL is not set")
			}

			n, err := (&service.CatalogService{Store: s.store, Index: idx}).Reindex(s.ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "indexed %d products into %s\n", n, s.cfg.ESIndex)
			return nil
		},
	}
}
