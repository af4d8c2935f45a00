package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"studydeck/internal/config"
)

func newDecksCmd(conf func() *config.Config) *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "decks",
		Short: "List stored decks, newest first",
		Args:  cobra.NoArgs,
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

			decks, err := svc.ListDecks(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTITLE\tCARDS\tCREATED")
			for _, d := range decks {
				fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", d.ID, d.Title, d.CardCount, d.CreatedAt.UTC().Format(time.RFC3339))
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "deck database path (default: DB_PATH)")

	return cmd
}
