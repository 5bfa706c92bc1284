// Package main provides the CLI entrypoint for typespeed.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/typespeed/internal/app"
	"github.com/verte-zerg/typespeed/internal/config"
	"github.com/verte-zerg/typespeed/internal/event"
	"github.com/verte-zerg/typespeed/internal/generator"
	"github.com/verte-zerg/typespeed/internal/model"
	"github.com/verte-zerg/typespeed/internal/stats"
	"github.com/verte-zerg/typespeed/internal/typing"
	"github.com/verte-zerg/typespeed/internal/wordlist"
)

const defaultDictSample = 10

var (
	practiceDuration time.Duration
	practiceWords    int
	practiceTick     time.Duration
	practicePreview  int
	practiceDict     string
	practiceLogFile  string

	dictPath   string
	dictSample int
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "typespeed",
		Short:         "Timed terminal typing test",
		SilenceUsage:  true,
		SilenceErrors: false,
		Args:          cobra.NoArgs,
		RunE:          runPracticeCmd,
	}

	rootCmd.Flags().DurationVar(&practiceDuration, "duration", typing.DefaultDuration, "round length")
	rootCmd.Flags().IntVar(&practiceWords, "words", typing.DefaultWords, "words sampled per round")
	rootCmd.Flags().DurationVar(&practiceTick, "tick", event.DefaultTickRate, "timer tick interval")
	rootCmd.Flags().IntVar(&practicePreview, "preview", typing.DefaultPreview, "upcoming words shown")
	rootCmd.Flags().StringVar(&practiceDict, "dict", "", "dictionary file (default: built-in)")
	rootCmd.Flags().StringVar(&practiceLogFile, "log-file", "", "write diagnostics to this file")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newDictCmd())

	return rootCmd
}

func runPracticeCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyDurationConfig(cmd, "duration", &practiceDuration, fileCfg.Practice.Duration)
	applyIntConfig(cmd, "words", &practiceWords, fileCfg.Practice.Words)
	applyDurationConfig(cmd, "tick", &practiceTick, fileCfg.Practice.Tick)
	applyIntConfig(cmd, "preview", &practicePreview, fileCfg.Practice.Preview)
	applyStringConfig(cmd, "dict", &practiceDict, fileCfg.Practice.Dict)

	cfg := model.Config{
		Duration: practiceDuration,
		Words:    practiceWords,
		TickRate: practiceTick,
		Preview:  practicePreview,
		DictPath: practiceDict,
		LogFile:  practiceLogFile,
	}
	if err := validateConfig(cfg); err != nil {
		return err
	}

	dict, err := wordlist.Load(cfg.DictPath)
	if err != nil {
		return dictLoadError(cfg.DictPath, err)
	}

	if err := app.RequireTerminal(os.Stdin, os.Stdout); err != nil {
		return err
	}

	closeLog, err := setupLogging(cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	results, err := app.Run(context.Background(), cfg, dict, generator.New())
	if err != nil {
		if len(results) > 0 {
			logErrln("session aborted; completed rounds:")
			if serr := stats.RenderSummary(os.Stderr, results); serr != nil {
				_ = serr
			}
		}
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	if err := stats.RenderSummary(cmd.OutOrStdout(), results); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}
	return nil
}

// setupLogging keeps log output off the alternate screen.
func setupLogging(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := tea.LogToFile(path, "typespeed")
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return func() {
		if cerr := f.Close(); cerr != nil {
			_ = cerr
		}
	}, nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	created, err := ensureConfigFile(path)
	if err != nil {
		return err
	}
	if created {
		logErrf("Created %s\n", path)
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

// ensureConfigFile writes the commented template unless a config exists.
func ensureConfigFile(path string) (bool, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("failed to stat config: %w", err)
	}
	if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
		return false, fmt.Errorf("failed to write config: %w", err)
	}
	return true, nil
}

func newDictCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dict",
		Short: "Show dictionary info and a sample",
		Args:  cobra.NoArgs,
		RunE:  runDictCmd,
	}
	cmd.Flags().StringVar(&dictPath, "dict", "", "dictionary file (default: built-in)")
	cmd.Flags().IntVar(&dictSample, "sample", defaultDictSample, "number of words to sample")
	return cmd
}

func runDictCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "dict", &dictPath, fileCfg.Practice.Dict)
	if dictSample < 0 {
		return fmt.Errorf("--sample must be >= 0")
	}

	words, err := wordlist.Load(dictPath)
	if err != nil {
		return dictLoadError(dictPath, err)
	}
	return writeDictInfo(cmd.OutOrStdout(), dictPath, words, generator.New().Sample(words, dictSample))
}

func writeDictInfo(w io.Writer, path string, words, sample []string) error {
	source := path
	if source == "" {
		source = "built-in"
	}
	lines := []string{
		fmt.Sprintf("source: %s", source),
		fmt.Sprintf("words:  %d", len(words)),
	}
	if len(sample) > 0 {
		lines = append(lines, fmt.Sprintf("sample: %s", strings.Join(sample, " ")))
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyDurationConfig(cmd *cobra.Command, name string, target *time.Duration, value *config.Duration) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = value.Duration
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# typespeed configuration
# Uncomment a value to enable it. CLI flags override config values.

[practice]
# duration = %q           # Round length
# words = %d               # Words sampled per round
# tick = %q              # Timer tick interval
# preview = %d              # Upcoming words shown
# dict = "/path/to/words.txt"  # Dictionary file; header lines end at "---"
`,
		typing.DefaultDuration.String(),
		typing.DefaultWords,
		event.DefaultTickRate.String(),
		typing.DefaultPreview,
	)
}

func validateConfig(cfg model.Config) error {
	if cfg.Duration < time.Second {
		return fmt.Errorf("--duration must be at least 1s")
	}
	if cfg.Words <= 0 {
		return fmt.Errorf("--words must be > 0")
	}
	if cfg.TickRate <= 0 {
		return fmt.Errorf("--tick must be > 0")
	}
	if cfg.TickRate > cfg.Duration {
		return fmt.Errorf("--tick must not exceed --duration")
	}
	if cfg.Preview <= 0 {
		return fmt.Errorf("--preview must be > 0")
	}
	return nil
}

func dictLoadError(path string, err error) error {
	source := path
	if source == "" {
		source = "built-in dictionary"
	}
	switch {
	case errors.Is(err, wordlist.ErrNoSentinel):
		return fmt.Errorf("failed to load %s: %w (header lines must end with a %q line)", source, err, wordlist.HeaderSentinel)
	case errors.Is(err, wordlist.ErrEmpty):
		return fmt.Errorf("failed to load %s: %w (no typable words after the header)", source, err)
	default:
		return fmt.Errorf("failed to load %s: %w", source, err)
	}
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

func logErrln(args ...any) {
	if _, err := fmt.Fprintln(os.Stderr, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
