package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/yassirfh/shopforge/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent exports",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().Int("limit", 20, "number of records to show")
	historyCmd.Flags().Duration("prune", 0, "delete records older than this duration (e.g. 720h) and exit")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	db, err := history.Open(cfg.HistoryDB)
	if err != nil {
		return err
	}
	defer db.Close()
	store := history.NewStore(db)

	ctx := context.Background()

	if prune, _ := cmd.Flags().GetDuration("prune"); prune > 0 {
		n, err := store.Prune(ctx, time.Now().Add(-prune))
		if err != nil {
			return err
		}
		fmt.Printf("Pruned %d record(s)\n", n)
		return nil
	}

	limit, _ := cmd.Flags().GetInt("limit")
	records, err := store.Recent(ctx, limit)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Println("No exports recorded yet.")
		return nil
	}

	fmt.Printf("%-20s  %-6s  %-8s  %5s  %6s  %9s  %s\n",
		"WHEN", "STATUS", "DURATION", "PAGES", "IMAGES", "SIZE", "OUTPUT")
	for _, r := range records {
		fmt.Printf("%-20s  %-6s  %-8s  %5d  %6d  %9s  %s\n",
			r.StartedAt.Local().Format("2006-01-02 15:04:05"),
			r.Status,
			r.Duration.Round(time.Millisecond),
			r.Pages, r.Images,
			formatBytes(r.Bytes),
			r.Output)
		if r.Error != "" && verbose {
			fmt.Printf("%22s%s\n", "", r.Error)
		}
	}
	return nil
}
