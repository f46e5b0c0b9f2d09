package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"revise/internal/scheduler"
)

func init() {
	cmd := &cobra.Command{
		Use:   "add [content]",
		Short: "Add a card",
		Long:  "Add a card for review. Content can be a positional arg or piped via stdin.",
		Run:   runAdd,
	}

	cmd.Flags().StringP("subject", "s", "", "Subject label (required)")
	cmd.Flags().StringP("chapter", "c", "", "Chapter label (required)")
	cmd.Flags().String("concept", "", "Concept label")
	cmd.Flags().StringP("type", "t", "fact", "Card type: formula, concept, fact, diagram")
	cmd.Flags().Int("difficulty", 3, "Difficulty 1-5 (harder cards surface first)")

	cmd.MarkFlagRequired("subject")
	cmd.MarkFlagRequired("chapter")

	RootCmd.AddCommand(cmd)
}

func runAdd(cmd *cobra.Command, args []string) {
	owner := requireOwner()
	subject, _ := cmd.Flags().GetString("subject")
	chapter, _ := cmd.Flags().GetString("chapter")
	concept, _ := cmd.Flags().GetString("concept")
	cardType, _ := cmd.Flags().GetString("type")
	difficulty, _ := cmd.Flags().GetInt("difficulty")

	// Content: positional arg first, then stdin.
	var content string
	if len(args) > 0 {
		content = strings.Join(args, " ")
	} else {
		stat, _ := os.Stdin.Stat()
		if (stat.Mode() & os.ModeCharDevice) == 0 {
			b, err := io.ReadAll(os.Stdin)
			if err != nil {
				exitErr("read stdin", err)
			}
			content = string(b)
		}
	}
	if strings.TrimSpace(content) == "" {
		exitErr("add", fmt.Errorf("content is required (positional arg or stdin)"))
	}

	svc, st := openService()
	defer st.Close()

	card, err := svc.CreateCard(cmd.Context(), scheduler.CreateParams{
		Owner:      owner,
		Subject:    subject,
		Chapter:    chapter,
		Concept:    concept,
		Content:    strings.TrimSpace(content),
		Type:       cardType,
		Difficulty: difficulty,
		Now:        time.Now(),
	})
	if err != nil {
		exitErr("add", err)
	}

	printJSON(card)
}
