// Package cli implements the revise CLI commands.
package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"revise/internal/config"
	"revise/internal/scheduler"
	"revise/internal/store"
)

var (
	cfgPath    string
	dbPath     string
	ownerFlag  string
	formatFlag string
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "revise",
	Short: "Spaced-repetition review scheduler for study notes",
	Long: "revise schedules study cards with a spaced-repetition ladder: review " +
		"outcomes grow or shrink each card's interval. SQLite-backed, single binary.",
}

func init() {
	RootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "Config path (default: $REVISE_CONFIG or ~/.revise/config.toml)")
	RootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "", "Database path (default: from config, or ~/.revise/revise.db)")
	RootCmd.PersistentFlags().StringVarP(&ownerFlag, "owner", "o", "", "Owner id (required for card commands)")
	RootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "json", "Output format: json or table")
}

func loadConfig() config.Config {
	path := cfgPath
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		exitErr("load config", err)
	}
	if dbPath != "" {
		cfg.DBPath = dbPath
	}
	return cfg
}

// openService wires the store and scheduler from config. The caller
// closes the returned store.
func openService() (*scheduler.Service, *store.SQLiteStore) {
	cfg := loadConfig()

	st, err := store.NewSQLiteStore(cfg.DBPath)
	if err != nil {
		exitErr("open store", err)
	}

	svc, err := scheduler.New(st, scheduler.Config{
		Ladder:        cfg.SRSLadder(),
		DueLimit:      cfg.DueLimit,
		ReviewRetries: cfg.ReviewRetries,
	})
	if err != nil {
		st.Close()
		exitErr("configure scheduler", err)
	}
	return svc, st
}

func requireOwner() string {
	if strings.TrimSpace(ownerFlag) == "" {
		exitErr("owner", fmt.Errorf("--owner is required"))
	}
	return ownerFlag
}

func printJSON(v interface{}) {
	b, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(b))
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
