package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var assessListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded assessment runs",
	RunE: func(cmd *cobra.Command, _ []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = s.Close() }()

		runs, err := s.ListRuns(cmd.Context(), limit)
		if err != nil {
			return err
		}
		if len(runs) == 0 {
			fmt.Println("No runs recorded")
			return nil
		}
		for _, r := range runs {
			fmt.Printf("%s  %s  %s\n", r.ID, r.CreatedAt.Format("2006-01-02 15:04:05"), r.Scenario)
		}
		return nil
	},
}

func init() {
	assessListCmd.Flags().Int("limit", 20, "maximum runs to list")
	assessCmd.AddCommand(assessListCmd)
}
