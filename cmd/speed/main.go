// Package main provides the CLI entrypoint for speed.
package main

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/speed/internal/config"
	"github.com/verte-zerg/speed/internal/corpus"
	"github.com/verte-zerg/speed/internal/generator"
	"github.com/verte-zerg/speed/internal/model"
	"github.com/verte-zerg/speed/internal/stats"
	"github.com/verte-zerg/speed/internal/tui"
)

const (
	defaultCoverage  = generator.DefaultCoverage
	defaultFlashMs   = 100
	defaultRow       = 5
	defaultDelimiter = " "
	defaultDocRow    = 0
)

var (
	// ErrTerminalUnavailable is returned when the terminal geometry cannot be read.
	ErrTerminalUnavailable = errors.New("terminal unavailable")
	// ErrTerminalTooNarrow is returned when not even the shortest word fits.
	ErrTerminalTooNarrow = errors.New("terminal too narrow")
)

var (
	trainCoverage  float64
	trainFlashMs   int
	trainRow       int
	trainDelimiter string
	trainASCII     bool

	docRow int
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "speed [file]",
		Short:         "Terminal typing trainer",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runTrainCmd,
	}

	rootCmd.Flags().Float64Var(&trainCoverage, "coverage", defaultCoverage, "share of the terminal width used by the line (0-1]")
	rootCmd.Flags().IntVar(&trainFlashMs, "flash-ms", defaultFlashMs, "error flash duration in milliseconds")
	rootCmd.Flags().IntVar(&trainRow, "row", defaultRow, "screen row of the line")
	rootCmd.Flags().StringVar(&trainDelimiter, "delimiter", defaultDelimiter, "word delimiter in the word list file")
	rootCmd.Flags().BoolVar(&trainASCII, "ascii", false, "keep only printable ASCII words")

	rootCmd.AddCommand(newDocCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func runTrainCmd(cmd *cobra.Command, args []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg, err := buildTrainConfig(cmd, fileCfg, args)
	if err != nil {
		return err
	}

	words, err := loadCorpus(cfg)
	if err != nil {
		return err
	}

	width, err := terminalWidth()
	if err != nil {
		return err
	}
	composer := generator.New(cfg.Coverage)
	line := composer.ComposeForWidth(words, width)
	if line.Empty() {
		return fmt.Errorf("%w: the shortest word needs %d columns, the line budget is %d of %d",
			ErrTerminalTooNarrow, words.MinWidth(), line.Budget, width)
	}

	m := tui.NewModel(cfg, words, line)
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	if !m.Done() {
		return nil
	}
	if err := stats.RenderResult(cmd.OutOrStdout(), m.Result()); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}
	return nil
}

func buildTrainConfig(cmd *cobra.Command, fileCfg config.FileConfig, args []string) (model.Config, error) {
	applyFloatConfig(cmd, "coverage", &trainCoverage, fileCfg.Train.Coverage)
	applyIntConfig(cmd, "flash-ms", &trainFlashMs, fileCfg.Train.FlashMs)
	applyIntConfig(cmd, "row", &trainRow, fileCfg.Train.Row)
	applyStringConfig(cmd, "delimiter", &trainDelimiter, fileCfg.Train.Delimiter)
	applyBoolConfig(cmd, "ascii", &trainASCII, fileCfg.Train.ASCII)

	if err := validateTrainFlags(); err != nil {
		return model.Config{}, err
	}
	delim, _ := utf8.DecodeRuneInString(trainDelimiter)
	cfg := model.Config{
		Coverage:      trainCoverage,
		FlashDuration: time.Duration(trainFlashMs) * time.Millisecond,
		Row:           trainRow,
		Delimiter:     delim,
		ASCIIOnly:     trainASCII,
	}
	if len(args) > 0 {
		cfg.WordListPath = args[0]
	}
	return cfg, nil
}

func loadCorpus(cfg model.Config) (*corpus.Corpus, error) {
	words := corpus.Fallback()
	if cfg.WordListPath != "" {
		loaded, err := corpus.Load(cfg.WordListPath, cfg.Delimiter)
		if err != nil {
			return nil, fmt.Errorf("failed to load word list: %w", err)
		}
		words = loaded
	}
	if cfg.ASCIIOnly {
		filtered, err := words.Filter(corpus.PrintableASCII)
		if err != nil {
			return nil, fmt.Errorf("failed to filter word list: %w", err)
		}
		words = filtered
	}
	return words, nil
}

func newDocCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doc <file>",
		Short: "Type a whole document and report WPM and accuracy",
		Args:  cobra.ExactArgs(1),
		RunE:  runDocCmd,
	}
	cmd.Flags().IntVar(&docRow, "row", defaultDocRow, "screen row of the document")
	return cmd
}

func runDocCmd(cmd *cobra.Command, args []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyIntConfig(cmd, "row", &docRow, fileCfg.Doc.Row)
	if docRow < 0 {
		return fmt.Errorf("--row must be >= 0")
	}
	cfg := model.DocConfig{Path: args[0], Row: docRow}

	doc, err := corpus.Load(cfg.Path, corpus.Separator)
	if err != nil {
		return fmt.Errorf("could not read file '%s': %w", cfg.Path, err)
	}
	if _, err := terminalWidth(); err != nil {
		return err
	}

	m := tui.NewDocModel(cfg, doc)
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	if err := stats.RenderResult(cmd.OutOrStdout(), m.Result()); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}
	return nil
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
		logErrf("Wrote %s\n", path)
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

func terminalWidth() (int, error) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0, fmt.Errorf("%w: stdout is not a terminal", ErrTerminalUnavailable)
	}
	width, _, err := term.GetSize(fd)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrTerminalUnavailable, err)
	}
	return width, nil
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

func applyFloatConfig(cmd *cobra.Command, name string, target, value *float64) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# speed configuration
# Uncomment a value to enable it. CLI flags override config values.

[train]
# coverage = %.1f          # Share of the terminal width used by the line (0-1]
# flash-ms = %d           # Error flash duration in milliseconds
# row = %d                  # Screen row of the line
# delimiter = %q          # Word delimiter in the word list file
# ascii = false            # Keep only printable ASCII words

[doc]
# row = %d                  # Screen row of the document
`,
		defaultCoverage,
		defaultFlashMs,
		defaultRow,
		defaultDelimiter,
		defaultDocRow,
	)
}

func validateTrainFlags() error {
	if trainCoverage <= 0 || trainCoverage > 1 {
		return fmt.Errorf("--coverage must be greater than 0 and at most 1")
	}
	if trainFlashMs < 0 {
		return fmt.Errorf("--flash-ms must be >= 0")
	}
	if trainRow < 0 {
		return fmt.Errorf("--row must be >= 0")
	}
	if utf8.RuneCountInString(trainDelimiter) != 1 {
		return fmt.Errorf("--delimiter must be a single character")
	}
	return nil
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
