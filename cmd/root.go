package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/chris-regnier/diarycal/internal/config"
	"github.com/chris-regnier/diarycal/internal/entry"
	"github.com/chris-regnier/diarycal/internal/storage"
	"github.com/chris-regnier/diarycal/internal/storage/markdown"
	"github.com/chris-regnier/diarycal/internal/storage/sqlite"
	"github.com/chris-regnier/diarycal/internal/ui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	cfgFile        string
	jsonOutput     bool
	storageBackend string
	appConfig      *config.Config
	store          storage.Store
	logger         = log.New(io.Discard, "", 0)
	logFile        *os.File
)

var rootCmd = &cobra.Command{
	Use:   "diarycal",
	Short: "A calendar diary",
	Long: `diarycal keeps one diary entry per day.

Run without a subcommand to open the calendar: days with an entry are
highlighted, selecting a day loads its entry, and the entry can be added,
updated or removed in place.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Load config
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("%w: loading config: %v", storage.ErrValidation, err)
		}
		appConfig = cfg

		// Override storage backend from flag
		if storageBackend != "" {
			appConfig.Storage = storageBackend
		}

		// MCP owns stdout, the calendar owns the terminal
		if cmd.Name() == mcpServeCmd.Name() {
			logger = log.New(os.Stderr, "diarycal: ", log.LstdFlags)
		} else {
			logger, logFile = openLog(appConfig.LogPath())
		}

		store, err = openStore(appConfig)
		if err != nil {
			logger.Printf("opening storage: %v", err)
			return err
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			// Non-TTY: print the current month instead
			return calendarRun(cmd.OutOrStdout(), entry.Today())
		}
		return ui.RunApp(store, ui.AppConfig{
			Theme:       ui.ResolveTheme(appConfig.Theme),
			MondayFirst: appConfig.MondayFirst(),
			Logger:      logger,
		})
	},
}

// closeResources releases the store and log file opened by the pre-run.
// It runs after every command, including ones whose RunE failed.
func closeResources() {
	if store != nil {
		store.Close()
	}
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}

// openStore initializes the configured storage backend.
func openStore(cfg *config.Config) (storage.Store, error) {
	switch cfg.Storage {
	case "markdown":
		s, err := markdown.New(cfg.DataDir)
		if err != nil {
			return nil, err
		}
		return s, nil
	case "sqlite", "":
		s, err := sqlite.New(cfg.DataDir, cfg.DBFile)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("%w: unknown storage backend: %s", storage.ErrValidation, cfg.Storage)
	}
}

// openLog opens the append-only log file. Logging is discarded when the
// file cannot be opened.
func openLog(path string) (*log.Logger, *os.File) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return log.New(io.Discard, "", 0), nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return log.New(io.Discard, "", 0), nil
	}
	return log.New(f, "", log.LstdFlags), f
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output in JSON format")
	rootCmd.PersistentFlags().StringVar(&storageBackend, "storage", "", "storage backend (sqlite|markdown)")

	// Silence Cobra's built-in error and usage printing so we control stderr output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}
