package cmd

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/ramanasai/mindclean/internal/config"
	"github.com/ramanasai/mindclean/internal/db"
	"github.com/ramanasai/mindclean/internal/engine"
	"github.com/ramanasai/mindclean/internal/notify"
	"github.com/ramanasai/mindclean/internal/schedule"
	"github.com/ramanasai/mindclean/internal/version"
)

var (
	cfgPath    string
	dataDir    string
	logLevel   string
	noReminder bool

	// set by PersistentPreRunE
	cfg    config.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "mindclean",
	Short: "Vider sa tête: capture, tri automatique et suivi de ses pensées",
	Long: `MindClean range chaque pensée déchargée dans l'une des quatre catégories
(À faire, À déléguer, Introspection, À oublier), suit votre streak quotidien et
exporte un rapport.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if cfgPath != "" {
			cfg, err = config.LoadFrom(cfgPath)
		} else {
			cfg, err = config.Load()
		}
		if err != nil {
			return err
		}
		if dataDir != "" {
			cfg.DataDir = dataDir
		}
		if logLevel != "" {
			cfg.LogLevel = logLevel
		}
		logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: cfg.SlogLevel()}))
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	rootCmd.Version = version.GetVersion()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "Config file (default ~/.config/mindclean/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "Directory holding mindclean.db")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&noReminder, "no-reminder", false, "Do not schedule the daily reminder")

	rootCmd.AddCommand(dumpCmd, confideCmd, listCmd, searchCmd, moveCmd, rmCmd,
		statsCmd, exportCmd, classifyCmd, tuiCmd, versionCmd)
}

// app is the per-invocation state: the database and the session restored from it.
type app struct {
	dbh     *sql.DB
	journal *db.Journal
	session *engine.Session
}

// openApp opens the data directory and restores the session from it.
func openApp(ctx context.Context) (*app, error) {
	dbh, err := db.Open(cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	var sealer *db.Sealer
	if cfg.Privacy.EncryptConfide {
		if cfg.Privacy.Passphrase == "" {
			return nil, errors.Join(
				errors.New("privacy.encrypt_confide requires a passphrase (MINDCLEAN_PRIVACY_PASSPHRASE)"),
				dbh.Close())
		}
		sealer, err = db.NewSealer(cfg.Privacy.Passphrase, filepath.Join(cfg.DataDir, "salt"))
		if err != nil {
			return nil, errors.Join(err, dbh.Close())
		}
	}

	journal := db.NewJournal(dbh, sealer, logger)
	session := engine.NewSession(
		engine.WithClock(func() time.Time { return now() }),
		engine.WithJournal(journal),
		engine.WithLogger(logger),
		engine.WithLocation(cfg.Location()),
	)
	if err := journal.Restore(ctx, session); err != nil {
		return nil, errors.Join(err, dbh.Close())
	}
	return &app{dbh: dbh, journal: journal, session: session}, nil
}

func (a *app) Close() error { return a.dbh.Close() }

// defaultMode is the --mode value when none is given.
func defaultMode() engine.Mode {
	if m, err := engine.ParseMode(cfg.DefaultMode); err == nil {
		return m
	}
	return engine.ModeDump
}

// remindersOn reports whether desktop notifications are allowed.
func remindersOn() bool {
	return !noReminder && cfg.Reminder.Enabled && os.Getenv("MINDCLEAN_NO_REMINDER") != "1"
}

// startReminder runs the daily reminder until ctx is done.
func startReminder(ctx context.Context, session *engine.Session) {
	if !remindersOn() {
		return
	}
	go schedule.RunConfigured(ctx, cfg, func() {
		today := engine.DayOf(nowIn())
		todos := len(session.Query(engine.Query{Category: engine.CategoryTodo}))
		title, msg := notify.DailyPrompt(session.Streak(), today, todos)
		if err := notify.Info(title, msg); err != nil {
			logger.Warn("reminder failed", "err", err)
		}
	})
}
