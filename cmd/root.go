package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/smartlearn/smartlearn/internal/session"
	"github.com/smartlearn/smartlearn/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "smartlearn",
	Short: "AI study companion for secondary school students",
	Long:  "SmartLearn — terminal study companion with an AI tutor, generated quizzes, and learning analytics.",
}

func Execute() error {
	// A local .env is optional; missing files are fine.
	_ = godotenv.Load()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides SMARTLEARN_DB env var)")
	rootCmd.PersistentFlags().String("session", "default", "Session ID to load or create")

	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(recommendCmd)
	rootCmd.AddCommand(upgradeCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then SMARTLEARN_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// newLogger builds the process logger. Quiet by default so log lines
// don't tear the TUI; SMARTLEARN_DEBUG enables development output.
func newLogger() *zap.Logger {
	if os.Getenv("SMARTLEARN_DEBUG") == "" {
		return zap.NewNop()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// openSession opens the store and loads the flagged session, creating a
// fresh one if no snapshot exists yet. The caller must Close the store.
func openSession(cmd *cobra.Command) (*store.Store, *session.Session, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}

	id, _ := cmd.Flags().GetString("session")
	sess, err := st.Sessions().Load(cmd.Context(), id)
	if errors.Is(err, store.ErrSessionNotFound) {
		return st, session.New(id), nil
	}
	if err != nil {
		st.Close()
		return nil, nil, fmt.Errorf("load session: %w", err)
	}
	return st, sess, nil
}

func saveSession(ctx context.Context, st *store.Store, sess *session.Session) error {
	if err := st.Sessions().Save(ctx, sess); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}
