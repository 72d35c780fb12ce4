package app

import (
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/awesomegic/bankledger/pkg/config"
)

// SetupLogger builds the process logger from config and installs it as the
// slog default.
func SetupLogger(cfg *config.Log) *slog.Logger {
	return setupLogger(os.Stdout, cfg)
}

func setupLogger(w io.Writer, cfg *config.Log) *slog.Logger {
	styles := log.DefaultStyles()
	styles.Levels[log.ErrorLevel] = lipgloss.NewStyle().
		SetString("ERROR").
		Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF6B6B"})
	styles.Levels[log.WarnLevel] = lipgloss.NewStyle().
		SetString("WARN").
		Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#EE6FF8", Dark: "#EE6FF8"})
	styles.Levels[log.InfoLevel] = lipgloss.NewStyle().
		SetString("INFO").
		Foreground(lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#04B575"})

	formatter := log.TextFormatter
	if cfg.Format == "json" {
		formatter = log.JSONFormatter
	}

	handler := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      cfg.TimeFormat,
		Level:           log.Level(cfg.Level),
		Prefix:          cfg.Prefix,
		Formatter:       formatter,
	})
	handler.SetStyles(styles)

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}
