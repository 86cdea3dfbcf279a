package main

import (
	"github.com/spf13/cobra"

	"github.com/geosafe/impact-cli/internal/store"
)

var assessCmd = &cobra.Command{
	Use:   "assess",
	Short: "Humanitarian indicator postprocessing",
	Long:  "Derives gender and age indicators from population totals, records runs, and exports reports.",
}

func init() { rootCmd.AddCommand(assessCmd) }

// openStore opens the run store configured in store.path and applies
// migrations.
func openStore(cmd *cobra.Command) (*store.SQLiteStore, error) {
	s, err := store.NewSQLite(cfg.Store.Path)
	if err != nil {
		return nil, err
	}
	if err := s.Migrate(cmd.Context()); err != nil {
		_ = s.Close()
		return nil, err
	}
	return s, nil
}
