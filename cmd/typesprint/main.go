// Package main provides the CLI entrypoint for typesprint.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/typesprint/internal/config"
	"github.com/verte-zerg/typesprint/internal/corpus"
	"github.com/verte-zerg/typesprint/internal/logger"
	"github.com/verte-zerg/typesprint/internal/model"
	"github.com/verte-zerg/typesprint/internal/stats"
	"github.com/verte-zerg/typesprint/internal/tui"
)

const (
	defaultTime     = model.DefaultMaxTime
	defaultLogLevel = "info"
)

var (
	testTime     int
	testSeed     int64
	testLogFile  string
	testLogLevel string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "typesprint",
		Short:         "Timed typing speed test",
		SilenceUsage:  true,
		SilenceErrors: false,
		Args:          cobra.NoArgs,
		RunE:          runTestCmd,
	}

	rootCmd.Flags().IntVar(&testTime, "time", defaultTime, "test duration in seconds")
	rootCmd.Flags().Int64Var(&testSeed, "seed", 0, "random seed for text selection (0 = clock)")
	rootCmd.Flags().StringVar(&testLogFile, "log-file", "", "append logs to this file")
	rootCmd.Flags().StringVar(&testLogLevel, "log-level", defaultLogLevel, "log level: debug, info, warn, error")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newTextsCmd())

	return rootCmd
}

func runTestCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd, config.DefaultConfigPath())
	if err != nil {
		return err
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("typesprint needs an interactive terminal")
	}

	log, closeLog, err := openLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()
	logger.SetDefault(log)

	m := tui.NewModel(cfg, corpus.New(cfg.Seed), log)
	program := tea.NewProgram(m, tea.WithAltScreen())
	final, err := program.Run()
	if err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	if fm, ok := final.(*tui.Model); ok {
		m = fm
	}
	result := m.Result()
	if !result.Started() {
		return nil
	}
	if err := stats.RenderResult(cmd.OutOrStdout(), result); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func resolveConfig(cmd *cobra.Command, path string) (model.Config, error) {
	fileCfg, err := config.LoadConfig(path)
	if err != nil {
		return model.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	applyIntConfig(cmd, "time", &testTime, fileCfg.Test.Time)
	applyInt64Config(cmd, "seed", &testSeed, fileCfg.Test.Seed)
	applyStringConfig(cmd, "log-file", &testLogFile, fileCfg.Log.File)
	applyStringConfig(cmd, "log-level", &testLogLevel, fileCfg.Log.Level)

	cfg := model.Config{
		MaxTime:  testTime,
		Seed:     testSeed,
		LogFile:  testLogFile,
		LogLevel: testLogLevel,
	}
	if err := validateConfig(cfg); err != nil {
		return model.Config{}, err
	}
	return cfg, nil
}

func openLogger(cfg model.Config) (*logger.Logger, func(), error) {
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	if cfg.LogFile == "" {
		return logger.New(logger.WithLevel(level)), func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	log, f, err := logger.OpenFile(cfg.LogFile, level)
	if err != nil {
		return nil, nil, err
	}
	return log, func() {
		if cerr := f.Close(); cerr != nil {
			logErrf("failed to close log file: %v\n", cerr)
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
	if err := ensureConfigFile(path); err != nil {
		return err
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func ensureConfigFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}
	return nil
}

func newTextsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "texts",
		Short: "List the built-in paragraphs",
		Args:  cobra.NoArgs,
		RunE:  runTextsCmd,
	}
}

func runTextsCmd(cmd *cobra.Command, _ []string) error {
	if err := stats.RenderTexts(cmd.OutOrStdout(), corpus.Texts(), outputWidth()); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// outputWidth returns the stdout terminal width, or 0 when stdout is not a terminal.
func outputWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}
	width, _, err := term.GetSize(fd)
	if err != nil {
		return 0
	}
	return width
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

func applyInt64Config(cmd *cobra.Command, name string, target, value *int64) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# typesprint configuration
# Uncomment a value to enable it. CLI flags override config values.

[test]
# time = %d               # Test duration in seconds
# seed = 0                # Random seed for text selection (0 = clock)

[log]
# file = %q
# level = %q           # debug, info, warn, error
`,
		defaultTime,
		config.DefaultLogPath(),
		defaultLogLevel,
	)
}

func validateConfig(cfg model.Config) error {
	if cfg.MaxTime <= 0 {
		return fmt.Errorf("--time must be > 0")
	}
	if _, err := logger.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}
	return nil
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
