package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"inkmentor/internal/coach"
	"inkmentor/internal/llm"
	"inkmentor/internal/profile"
	"inkmentor/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "inkmentor",
	Short: "Socratic writing mentor",
	Long:  "Inkmentor — AI writing mentor that teaches through questions, never answers.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides INKMENTOR_DB env var)")
	rootCmd.PersistentFlags().String("profile-url", "", "Base URL of the learner-profile service")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")

	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(perspectivesCmd)
	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then INKMENTOR_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

func newLogger(cmd *cobra.Command) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return config.Build()
}

// buildService assembles the coach service with event logging and an
// optional profile fetcher. The caller must Close the returned store.
func buildService(cmd *cobra.Command) (*coach.Service, *store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, err
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, err
	}

	logger, err := newLogger(cmd)
	if err != nil {
		s.Close()
		return nil, nil, err
	}

	lcfg := llm.ConfigFromEnv()
	provider := llm.WithLogging(llm.NewAnthropicProvider(lcfg.Anthropic), s.EventRepo())

	var fetcher profile.Fetcher
	if u, _ := cmd.Flags().GetString("profile-url"); u != "" {
		fetcher = profile.NewHTTPFetcher(u)
	}

	ccfg := coach.DefaultConfig()
	ccfg.MaxTokens = lcfg.MaxTokens
	ccfg.Temperature = lcfg.Temperature

	return coach.NewService(provider, fetcher, logger, ccfg), s, nil
}
