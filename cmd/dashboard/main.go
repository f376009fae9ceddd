package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"
	_ "time/tzdata"

	"household-budget/internal/client"
	"household-budget/internal/dashboard"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// app carries what every subcommand needs once the root command has
// resolved its configuration
type app struct {
	v        *viper.Viper
	cfgFile  string
	client   *client.Client
	render   *dashboard.Renderer
	location *time.Location
	now      func() time.Time
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx)
	stop()

	if err != nil {
		var reported *reportedError
		if !errors.As(err, &reported) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{v: viper.New(), now: time.Now}

	root := &cobra.Command{
		Use:           "household",
		Short:         "家計簿ダッシュボード",
		Long:          "Terminal dashboard for the household-budget backend: monthly summary, budgets, expenses and reconciliation.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(stdout, stderr)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default: $HOME/.config/household-budget/config.yaml)")
	flags.String("api-url", "http://localhost:8000", "backend base URL")
	flags.Duration("timeout", client.DefaultTimeout, "per-request timeout")
	flags.Int("retries", client.DefaultMaxRetries, "retries on 429/5xx and connection errors")
	flags.String("timezone", "Asia/Tokyo", "timezone used to pick the current month")
	flags.String("log-level", "warn", "log level (debug, info, warn, error)")
	flags.String("log-format", "console", "log format (console, json)")

	_ = a.v.BindPFlag("api_url", flags.Lookup("api-url"))
	_ = a.v.BindPFlag("timeout", flags.Lookup("timeout"))
	_ = a.v.BindPFlag("retries", flags.Lookup("retries"))
	_ = a.v.BindPFlag("timezone", flags.Lookup("timezone"))
	_ = a.v.BindPFlag("logging.level", flags.Lookup("log-level"))
	_ = a.v.BindPFlag("logging.format", flags.Lookup("log-format"))

	root.AddCommand(
		healthCmd(a),
		summaryCmd(a),
		budgetsCmd(a),
		monthlyBudgetsCmd(a),
		expensesCmd(a),
		categoriesCmd(a),
		syncCmd(a),
		verifyCmd(a),
	)

	return root
}

func (a *app) init(stdout, stderr io.Writer) error {
	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			a.v.AddConfigPath(filepath.Join(home, ".config", "household-budget"))
		}
		a.v.SetConfigName("config")
		a.v.SetConfigType("yaml")
	}

	a.v.SetEnvPrefix("HOUSEHOLD")
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	a.v.AutomaticEnv()

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	logger, err := newLogger(stderr, a.v.GetString("logging.level"), a.v.GetString("logging.format"))
	if err != nil {
		return err
	}
	slog.SetDefault(logger)

	location, err := time.LoadLocation(a.v.GetString("timezone"))
	if err != nil {
		return fmt.Errorf("invalid timezone %q: %w", a.v.GetString("timezone"), err)
	}
	a.location = location

	a.client = client.New(a.v.GetString("api_url"),
		client.WithTimeout(a.v.GetDuration("timeout")),
		client.WithMaxRetries(a.v.GetInt("retries")),
		client.WithLogger(logger),
	)
	a.render = dashboard.NewRenderer(stdout)

	return nil
}

func newLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	var slogLevel slog.Level
	switch strings.ToLower(level) {
	case "debug":
		slogLevel = slog.LevelDebug
	case "info":
		slogLevel = slog.LevelInfo
	case "warn", "warning":
		slogLevel = slog.LevelWarn
	case "error":
		slogLevel = slog.LevelError
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	opts := &slog.HandlerOptions{Level: slogLevel}
	switch strings.ToLower(format) {
	case "console", "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}
}

// month returns the --month flag or the current month in the configured timezone
func (a *app) month(cmd *cobra.Command) string {
	if m, _ := cmd.Flags().GetString("month"); m != "" {
		return m
	}
	return dashboard.CurrentMonth(a.now(), a.location)
}

// reportedError marks an error the renderer has already shown
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }

func (e *reportedError) Unwrap() error { return e.err }

// fail prints err in the dashboard style and hands it back to cobra for the exit code
func (a *app) fail(err error) error {
	a.render.Error(err)
	return &reportedError{err: err}
}
