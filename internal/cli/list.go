package cli

import (
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all cards for an owner",
		Run:   runList,
	}

	cmd.Flags().StringP("subject", "s", "", "Filter by subject")

	RootCmd.AddCommand(cmd)
}

func runList(cmd *cobra.Command, args []string) {
	owner := requireOwner()
	subject, _ := cmd.Flags().GetString("subject")

	_, st := openService()
	defer st.Close()

	cards, err := st.ListByOwner(cmd.Context(), owner, subject)
	if err != nil {
		exitErr("list", err)
	}

	printCards(cards)
}
