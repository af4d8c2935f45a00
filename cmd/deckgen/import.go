package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"studydeck/internal/config"
	"studydeck/internal/importer"
)

func newImportCmd(conf func() *config.Config) *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "import <dir>",
		Short: "Generate and store a deck for every note in a directory",
		Long: `Import walks dir for .md and .txt notes, generates a deck for each one and
stores it in the deck database. Notes whose deck is already stored are skipped.
A note that fails does not stop the import; the command exits non-zero at the end.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := conf()
			if dbPath == "" {
				dbPath = cfg.DBPath
			}

			svc, closeDB, err := openService(cfg, dbPath)
			if err != nil {
				return err
			}
			defer closeDB()

			stats, err := importer.NewPipeline(svc).ImportAll(cmd.Context(), args[0])
			if stats != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "notes: %d  imported: %d  skipped: %d  failed: %d  cards: %d\n",
					stats.Notes, stats.Imported, stats.Skipped, stats.Failed, stats.Cards.Total)
			}
			return err
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "deck database path (default: DB_PATH)")

	return cmd
}
