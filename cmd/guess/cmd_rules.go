package main

import (
	"fmt"
	"io"

	"guessgame/internal/game"
	"guessgame/internal/ui"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

const rulesWidth = 80

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Explain how to play",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		styled := cfg.Output.Style == ui.StyleColor ||
			(cfg.Output.Style == ui.StyleAuto && ui.IsTerminal(out))
		return renderRules(out, cfg.GameRange(), styled)
	},
}

func rulesMarkdown(r game.Range) string {
	return fmt.Sprintf(`# Guess the number

A secret number between **%d** and **%d** is chosen when the game starts.

Type a whole number and press Enter. After each guess you see one of:

- Too Small: the secret is larger.
- Too Large: the secret is smaller.
- You Win!: that was it, the game ends.

Anything that is not a whole number is ignored and you are asked again.
Closing the input (Ctrl+D) before winning ends the game with an error.
`, r.Min, r.Max)
}

func renderRules(w io.Writer, r game.Range, styled bool) error {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(rulesWidth)}
	if styled {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle("notty"))
	}
	renderer, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	out, err := renderer.Render(rulesMarkdown(r))
	if err != nil {
		return fmt.Errorf("failed to render rules: %w", err)
	}
	_, err = io.WriteString(w, out)
	return err
}
