// Package main provides the guess CLI entry point.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"guessgame/internal/config"
	"guessgame/internal/game"
	"guessgame/internal/logging"
	"guessgame/internal/tui"
	"guessgame/internal/ui"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global flags
	verbose    bool
	configPath string
	minFlag    uint32
	maxFlag    uint32
	reveal     bool
	useTUI     bool
	plain      bool

	// Resolved at startup
	cfg    *config.Config
	logger *zap.Logger

	// targets picks the secret; tests swap in a fixed source.
	targets game.TargetSource = game.RandomTarget{}
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "guess",
	Short: "Guess the secret number",
	Long: `guess picks a secret number and tells you whether each guess is
too small, too large, or right. It keeps asking until you win.

Run without arguments to play on the terminal. Use --tui for the
full-screen version.`,
	Args:              cobra.NoArgs,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runGame,
}

func init() {
	registerFlags(rootCmd)

	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(configCmd)
}

// registerFlags binds the global and play flags to cmd.
func registerFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath, "Config file")
	cmd.PersistentFlags().BoolVar(&plain, "plain", false, "Disable colors")

	cmd.Flags().Uint32Var(&minFlag, "min", 0, "Smallest possible secret (overrides config)")
	cmd.Flags().Uint32Var(&maxFlag, "max", 0, "Largest possible secret (overrides config)")
	cmd.Flags().BoolVar(&reveal, "reveal", false, "Print the secret at start (debugging)")
	cmd.Flags().BoolVar(&useTUI, "tui", false, "Play in full-screen mode")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// setup loads config, applies flag overrides and builds the logger.
func setup(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load(configPath)
	if err != nil {
		return err
	}
	applyFlags(cmd, loaded)
	if err := loaded.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	l, err := logging.New(loaded.Logging)
	if err != nil {
		return err
	}

	cfg = loaded
	logger = l
	logging.For(logger, logging.CategoryBoot).Debug("config resolved",
		zap.String("path", configPath),
		zap.Stringer("range", cfg.GameRange()),
		zap.String("style", cfg.Output.Style))
	return nil
}

func applyFlags(cmd *cobra.Command, c *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("min") {
		c.Range.Min = minFlag
	}
	if flags.Changed("max") {
		c.Range.Max = maxFlag
	}
	if flags.Changed("reveal") {
		c.RevealTarget = reveal
	}
	if plain {
		c.Output.Style = ui.StylePlain
	}
	if verbose {
		c.Logging.Level = "debug"
	}
}

// runGame plays one game on the command's stdin/stdout.
func runGame(cmd *cobra.Command, args []string) error {
	if useTUI {
		return runTUI(cmd)
	}

	log := logging.For(logger, logging.CategorySession)
	printer := ui.NewPrinter(cmd.OutOrStdout(), cfg.Output.Style, ui.ThemeByName(cfg.Output.Theme))
	session, err := game.NewSession(
		cfg.GameRange(),
		targets,
		game.NewReaderSource(cmd.InOrStdin()),
		printer,
		game.WithRevealTarget(cfg.RevealTarget),
		game.WithLogger(log),
	)
	if err != nil {
		return err
	}

	res, err := session.Run()
	if err != nil {
		logging.For(logger, logging.CategoryInput).Error("session aborted",
			zap.String("session_id", res.SessionID),
			zap.Int("attempts", res.Attempts),
			zap.Error(err))
		return fmt.Errorf("reading guess: %w", err)
	}
	return nil
}

func runTUI(cmd *cobra.Command) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, err := game.New(cfg.GameRange(), targets)
	if err != nil {
		return err
	}
	styles := ui.NewStyles(ui.ThemeByName(cfg.Output.Theme), nil)
	m := tui.New(g, styles,
		tui.WithRevealTarget(cfg.RevealTarget),
		tui.WithLogger(logging.For(logger, logging.CategoryTUI)),
	)
	res, err := tui.Run(ctx, m, cmd.InOrStdin(), cmd.OutOrStdout())
	if err != nil {
		if errors.Is(err, game.ErrInputClosed) {
			logging.For(logger, logging.CategoryInput).Error("session aborted",
				zap.String("session_id", res.SessionID),
				zap.Int("attempts", res.Attempts),
				zap.Error(err))
			return fmt.Errorf("reading guess: %w", err)
		}
		return err
	}
	logging.For(logger, logging.CategoryTUI).Info("game finished",
		zap.String("session_id", res.SessionID),
		zap.Int("attempts", res.Attempts))
	return nil
}
