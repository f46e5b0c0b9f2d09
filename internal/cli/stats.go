package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show retention statistics",
		Long:  "Show card counts, due counts, and mean retention, overall and per subject.",
		Run:   runStats,
	}

	RootCmd.AddCommand(cmd)
}

func runStats(cmd *cobra.Command, args []string) {
	owner := requireOwner()

	svc, st := openService()
	defer st.Close()

	stats, err := svc.Stats(cmd.Context(), owner, time.Now())
	if err != nil {
		exitErr("stats", err)
	}

	if formatFlag == "table" {
		fmt.Printf("cards: %d   due: %d   mean retention: %.2f\n\n",
			stats.TotalCards, stats.DueCards, stats.MeanRetention)

		rows := make([][]string, 0, len(stats.Subjects))
		for _, s := range stats.Subjects {
			rows = append(rows, []string{
				s.Subject,
				fmt.Sprintf("%d", s.Cards),
				fmt.Sprintf("%.2f", s.MeanRetention),
			})
		}
		fmt.Println(renderTable([]string{"Subject", "Cards", "Retention"}, rows))
		return
	}

	printJSON(stats)
}
