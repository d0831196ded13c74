package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/abhisek/genero/internal/classifier"
	"github.com/abhisek/genero/internal/config"
	"github.com/abhisek/genero/internal/lexicon"
	"github.com/abhisek/genero/internal/logging"
	"github.com/abhisek/genero/internal/store"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:   "genero",
	Short: "Infer the gender of Spanish given names",
	Long: "genero classifies Spanish given names as masculino, femenino or desconocido " +
		"with a deterministic dictionary and suffix rule cascade, and supports sampling, " +
		"manual review and evaluation of its output.",
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger(cmd).Sync()
	},
}

// Resolved by setup before any subcommand runs.
var cfg *config.Config

func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides GENERO_DB env var)")
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to genero.toml (default: nearest one above the working directory)")
	rootCmd.PersistentFlags().String("rules", "", "Rules file replacing the built-in tables")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().Bool("log-json", false, "Write logs as JSON")

	rootCmd.AddCommand(inferCmd)
	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(sampleCmd)
	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(evaluateCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(versionCmd)
}

// setup builds the logger and loads the configuration.
func setup(cmd *cobra.Command, args []string) error {
	verbose, _ := cmd.Flags().GetBool("verbose")
	jsonLogs, _ := cmd.Flags().GetBool("log-json")

	l, err := logging.New(logging.Options{Verbose: verbose, JSON: jsonLogs})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	cmd.SetContext(logging.WithLogger(cmd.Context(), l))

	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("resolve working directory: %w", err)
	}
	path, _ := cmd.Flags().GetString("config")
	c, err := config.Resolve(path, wd)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return fmt.Errorf("invalid config %s: %w", c.Path, err)
	}
	cfg = c

	if c.Path != "" {
		l.Debug("configuration loaded", zap.String("path", c.Path))
	} else {
		l.Debug("no genero.toml found; using defaults", zap.String("root", c.Root))
	}
	return nil
}

// logger returns the logger setup attached to the command context.
func logger(cmd *cobra.Command) *zap.Logger {
	return logging.FromContext(cmd.Context())
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then GENERO_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// loadTables returns the rule tables from --rules, then the config file,
// then the built-in tables.
func loadTables(cmd *cobra.Command) (*lexicon.Tables, error) {
	path, _ := cmd.Flags().GetString("rules")
	if path == "" {
		path = cfg.RulesFile()
	}
	if path == "" {
		return lexicon.Default(), nil
	}
	t, err := lexicon.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load rules: %w", err)
	}
	logger(cmd).Info("custom rules loaded", zap.String("path", path), zap.String("version", t.Version))
	return t, nil
}

func newClassifier(cmd *cobra.Command) (*classifier.Classifier, error) {
	t, err := loadTables(cmd)
	if err != nil {
		return nil, err
	}
	return classifier.New(t), nil
}

// recordRun saves run into the history database. Failures are logged and
// never fail the command.
func recordRun(cmd *cobra.Command, run *store.Run) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		logger(cmd).Warn("run not recorded", zap.Error(err))
		return
	}
	s, err := store.Open(dbPath)
	if err != nil {
		logger(cmd).Warn("run not recorded", zap.String("db", dbPath), zap.Error(err))
		return
	}
	defer s.Close()

	if err := s.RunRepo().Save(cmd.Context(), run); err != nil {
		logger(cmd).Warn("run not recorded", zap.String("db", dbPath), zap.Error(err))
		return
	}
	logger(cmd).Debug("run recorded", zap.String("id", run.ID), zap.String("kind", string(run.Kind)))
}
