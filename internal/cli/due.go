package cli

import (
	"time"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "due",
		Short: "List cards due for review",
		Long: "List active cards whose next review has come, hardest first, most " +
			"overdue first. The limit is a hard cap on session size.",
		Run: runDue,
	}

	cmd.Flags().IntP("limit", "l", 0, "Maximum cards to return (default: due_limit from config)")

	RootCmd.AddCommand(cmd)
}

func runDue(cmd *cobra.Command, args []string) {
	owner := requireOwner()
	limit, _ := cmd.Flags().GetInt("limit")

	svc, st := openService()
	defer st.Close()

	cards, err := svc.DueCards(cmd.Context(), owner, time.Now(), limit)
	if err != nil {
		exitErr("due", err)
	}

	printCards(cards)
}
