package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	suspend := &cobra.Command{
		Use:   "suspend <card-id>",
		Short: "Suspend a card",
		Long:  "Hide a card from due selection without deleting it. The card stays readable by id.",
		Args:  cobra.ExactArgs(1),
		Run:   runSuspend,
	}
	resume := &cobra.Command{
		Use:   "resume <card-id>",
		Short: "Resume a suspended card",
		Args:  cobra.ExactArgs(1),
		Run:   runResume,
	}

	RootCmd.AddCommand(suspend, resume)
}

func runSuspend(cmd *cobra.Command, args []string) {
	owner := requireOwner()

	svc, st := openService()
	defer st.Close()

	if err := svc.Suspend(cmd.Context(), owner, args[0]); err != nil {
		exitErr("suspend", err)
	}
	fmt.Printf("suspended %s\n", args[0])
}

func runResume(cmd *cobra.Command, args []string) {
	owner := requireOwner()

	svc, st := openService()
	defer st.Close()

	if err := svc.Resume(cmd.Context(), owner, args[0]); err != nil {
		exitErr("resume", err)
	}
	fmt.Printf("resumed %s\n", args[0])
}
