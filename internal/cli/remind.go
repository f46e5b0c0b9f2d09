package cli

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"revise/internal/remind"
)

func init() {
	cmd := &cobra.Command{
		Use:   "remind",
		Short: "Run the due-card reminder loop",
		Long: "Periodically check each configured owner (remind_owners in the config " +
			"file, or --owner) and log when cards are waiting for review. Runs until " +
			"interrupted.",
		Run: runRemind,
	}

	RootCmd.AddCommand(cmd)
}

func runRemind(cmd *cobra.Command, args []string) {
	cfg := loadConfig()

	owners := cfg.RemindOwners
	if ownerFlag != "" {
		owners = append(owners, ownerFlag)
	}
	if len(owners) == 0 {
		exitErr("remind", fmt.Errorf("no owners: set remind_owners in config or pass --owner"))
	}

	svc, st := openService()
	defer st.Close()

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
	interval := time.Duration(cfg.RemindIntervalMinutes) * time.Minute

	r := remind.New(svc, owners, interval, log, nil)
	if err := r.Start(); err != nil {
		exitErr("remind", err)
	}
	defer r.Stop()

	log.Info("reminder running", "owners", owners, "interval", interval)

	// Run an immediate pass, then wait for a signal.
	r.Check()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig
	log.Info("reminder stopping")
}
