package main

import (
	"fmt"

	"github.com/HendryAvila/uranai/internal/dataset"
	sv "github.com/HendryAvila/uranai/internal/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newImportCmd(a *app) *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "import <csv>",
		Short: "Load the animal dataset CSV into the SQLite store",
		Long: "Import replaces every row of the SQLite dataset with the valid rows of the\n" +
			"CSV file. Malformed rows are skipped and counted. Use dataset.backend: sqlite\n" +
			"to have resolve and serve read from the store.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if dbPath == "" {
				dbPath = a.cfg.Dataset.DBPath
			}
			store, err := dataset.Open(dataset.Config{Path: dbPath})
			if err != nil {
				return err
			}
			defer store.Close()

			info, err := sv.ImportCSV(cmd.Context(), store, args[0])
			if err != nil {
				return err
			}
			a.logger.Info("dataset imported",
				zap.String("source", info.Source), zap.String("db", dbPath),
				zap.Int("rows", info.Rows), zap.Int("skipped", info.Skipped))

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "imported %d rows (%d skipped) into %s\n", info.Rows, info.Skipped, dbPath)
			return err
		},
	}
	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite database (default: dataset.db_path from config)")
	return cmd
}
