package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var logLevel string

// parseLogLevel converts a string log level to slog.Level. Supports debug,
// info, warn, error (case-insensitive).
func parseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: must be debug, info, warn, or error", level)
	}
}

func newLogger() *slog.Logger {
	level, err := parseLogLevel(logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v, using info\n", err)
		level = slog.LevelInfo
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return slog.New(handler)
}

var rootCmd = &cobra.Command{
	Use:   "screenplay",
	Short: "Classify screenplay PDF text into scenes, characters, and dialogue",
	Long: `screenplay extracts text from a screenplay PDF and classifies every line
into its structural role: scene headings, character cues, dialogue,
action, parentheticals, transitions, and title-page elements.

Use parse_pdf to run the full pipeline and serialize the result, or
parse_debug to dump the raw per-element classification for diagnosis.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&logLevel, "log-level", "", "log level: debug, info, warn, error (default: info)",
	)
	rootCmd.AddCommand(parsePDFCmd)
	rootCmd.AddCommand(parseDebugCmd)
}
