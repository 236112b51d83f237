package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/iw2rmb/kodeline"
	"github.com/iw2rmb/kodeline/clipboard"
	"github.com/iw2rmb/kodeline/config"
	"github.com/iw2rmb/kodeline/history"
	"github.com/iw2rmb/kodeline/prompt"
)

var (
	configPath string
	multiline  bool
	mask       string
	verbose    bool
	logFile    string
)

var rootCmd = &cobra.Command{
	Use:   "kodeline",
	Short: "Interactive prompt line editor",
	Long: `kodeline runs the assistant prompt line on its own: type, navigate and
submit lines into a scrollable transcript.

Tab switches focus between the prompt and the transcript. Ctrl+Y copies the
last submission. Press Ctrl+C or Ctrl+D twice to exit.`,
	Version:       kodeline.BuildVersion(),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultPath(), "config file")
	rootCmd.Flags().BoolVarP(&multiline, "multiline", "m", false, `enable "\" + Enter line continuation`)
	rootCmd.Flags().StringVar(&mask, "mask", "", "mask input with this character (secret entry)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "debug logging (to "+config.DefaultLogPath()+" unless a log file is set)")
	rootCmd.Flags().StringVar(&logFile, "log-file", "", "write logs to this file")
}

func run(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	applyFlags(cmd, cfg)

	logger, err := cfg.Logging.NewLogger()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	hist := history.New(cfg.History.Limit)
	if cfg.History.File != "" {
		if hist, err = history.Load(cfg.History.File, cfg.History.Limit); err != nil {
			logger.Warn("history unavailable", zap.Error(err))
			hist = history.New(cfg.History.Limit)
		}
	}

	clip := clipboard.NewSystem(logger.Named("clipboard"))
	pcfg := prompt.Config{
		Multiline:                          cfg.Multiline,
		Mask:                               cfg.Mask,
		DisableCursorMovementForUpDownKeys: cfg.DisableCursorMovementForUpDownKeys,
		DoublePressWindow:                  cfg.GetDoublePressWindow(),
		MessageTimeout:                     cfg.GetMessageTimeout(),
		ClipboardTimeout:                   cfg.GetClipboardTimeout(),
		Clipboard:                          clip,
		History:                            hist,
		Styles:                             prompt.DefaultStyles(),
		Logger:                             logger,
	}

	a := newApp(pcfg, clip, cfg.History.File, logger)
	defer a.prompt.Close()

	logger.Info("starting", zap.String("version", kodeline.BuildVersion()), zap.String("config", configPath))
	if _, err := tea.NewProgram(a, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("run prompt: %w", err)
	}
	return nil
}

// applyFlags overrides file values with flags the user actually set.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("multiline") {
		cfg.Multiline = multiline
	}
	if cmd.Flags().Changed("mask") {
		cfg.Mask = mask
	}
	if logFile != "" {
		cfg.Logging.File = logFile
	}
	if verbose {
		cfg.Logging.Level = "debug"
		cfg.Logging.Development = true
		if cfg.Logging.File == "" {
			cfg.Logging.File = config.DefaultLogPath()
		}
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
