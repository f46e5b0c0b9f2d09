package cli

import (
	"time"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed template cards for a chapter",
		Long: "Create the standard template cards for a subject and chapter (key " +
			"formulas, core concepts, and so on). Seeding appends: running it twice " +
			"for the same chapter creates a second set of cards, it does not upsert.",
		Run: runSeed,
	}

	cmd.Flags().StringP("subject", "s", "", "Subject label (required)")
	cmd.Flags().StringP("chapter", "c", "", "Chapter label (required)")

	cmd.MarkFlagRequired("subject")
	cmd.MarkFlagRequired("chapter")

	RootCmd.AddCommand(cmd)
}

func runSeed(cmd *cobra.Command, args []string) {
	owner := requireOwner()
	subject, _ := cmd.Flags().GetString("subject")
	chapter, _ := cmd.Flags().GetString("chapter")

	svc, st := openService()
	defer st.Close()

	cards, err := svc.SeedChapter(cmd.Context(), owner, subject, chapter, time.Now())
	if err != nil {
		exitErr("seed", err)
	}

	printCards(cards)
}
