package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"revise/internal/srs"
)

func init() {
	cmd := &cobra.Command{
		Use:   "review <card-id> <outcome>",
		Short: "Record a review outcome",
		Long: "Record how a review went (forgot, hard, good, easy). The card's " +
			"retention score and next review date move accordingly.",
		Args: cobra.ExactArgs(2),
		Run:  runReview,
	}

	RootCmd.AddCommand(cmd)
}

func runReview(cmd *cobra.Command, args []string) {
	owner := requireOwner()
	cardID := args[0]

	outcome, err := srs.ParseOutcome(args[1])
	if err != nil {
		exitErr("review", err)
	}

	svc, st := openService()
	defer st.Close()

	card, err := svc.ReviewCard(cmd.Context(), owner, cardID, outcome, time.Now())
	if err != nil {
		exitErr("review", err)
	}

	if formatFlag == "table" {
		fmt.Printf("%s: retention %.2f, next review %s\n",
			card.Concept, card.RetentionScore, formatDay(card.NextReviewAt))
		return
	}
	printJSON(card)
}
