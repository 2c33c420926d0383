package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/mmynk/tipsplitter/internal/config"
	"github.com/mmynk/tipsplitter/internal/form"
	"github.com/mmynk/tipsplitter/internal/format"
	"github.com/mmynk/tipsplitter/internal/middleware"
	"github.com/mmynk/tipsplitter/internal/theme"
	"github.com/mmynk/tipsplitter/internal/tui"
	"github.com/mmynk/tipsplitter/pkg/logging"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run reports its own failure to the log so the record is written before
// the log file is closed.
func run() (err error) {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// The form owns the terminal, so logs only go to a file.
	var logOut io.Writer = io.Discard
	logFile, err := cfg.OpenLogFile()
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
		logOut = logFile
	}
	logger := logging.Setup(logOut, logging.ParseLevel(cfg.LogLevel)).
		With("launch_id", uuid.NewString())
	slog.SetDefault(logger)
	defer func() {
		if err != nil {
			logger.Error("Tip Splitter failed", "error", err)
		}
	}()

	f, err := format.New(cfg.Locale, cfg.Currency)
	if err != nil {
		return fmt.Errorf("configure formatting: %w", err)
	}
	logger.Info("Formatting configured", "locale", f.Locale().String(), "currency", f.Currency().String())

	store := form.NewStore(form.WithMiddleware(middleware.Logging(logger)))
	model := tui.New(store, f, theme.Dark())
	defer model.Close()

	var opts []tea.ProgramOption
	if cfg.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}

	logger.Info("Form started")
	if _, err = tea.NewProgram(model, opts...).Run(); err != nil {
		return fmt.Errorf("run form: %w", err)
	}

	snap := store.Snapshot()
	logger.Info("Form closed",
		"amount", float64(snap.State.Amount),
		"party_size", int(snap.State.PartySize),
		"tip_rate", int(snap.State.TipRate),
		"per_person", snap.Split.PerPersonAmount,
	)
	return nil
}
