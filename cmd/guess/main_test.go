package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"guessgame/internal/config"
	"guessgame/internal/game"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// newTestCmd prepares globals for a run against an in-memory terminal.
func newTestCmd(t *testing.T, target uint32, input string) (*cobra.Command, *bytes.Buffer) {
	t.Helper()
	for _, k := range []string{"GUESS_MIN", "GUESS_MAX", "GUESS_REVEAL_TARGET", "GUESS_LOG_LEVEL", "GUESS_OUTPUT_STYLE"} {
		t.Setenv(k, "")
	}

	oldTargets, oldPath := targets, configPath
	t.Cleanup(func() {
		targets, configPath = oldTargets, oldPath
		cfg, logger = nil, nil
	})
	targets = game.FixedTarget(target)
	configPath = filepath.Join(t.TempDir(), "guess.yaml")

	cmd := &cobra.Command{}
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader(input))
	cmd.SetOut(&out)
	require.NoError(t, setup(cmd, nil))
	logger = zap.NewNop()
	return cmd, &out
}

func TestRunGame_ScenarioA(t *testing.T) {
	cmd, out := newTestCmd(t, 50, "25\n75\n50\n")

	require.NoError(t, runGame(cmd, nil))

	want := strings.Join([]string{
		"Guess the number!",
		"The secret is between 1 and 100.",
		"Please input your guess.",
		"You guessed: 25",
		"Too Small",
		"Please input your guess.",
		"You guessed: 75",
		"Too Large",
		"Please input your guess.",
		"You guessed: 50",
		"You Win!",
	}, "\n") + "\n"
	assert.Equal(t, want, out.String())
}

func TestRunGame_ScenarioB(t *testing.T) {
	cmd, out := newTestCmd(t, 7, "abc\n7\n")

	require.NoError(t, runGame(cmd, nil))

	text := out.String()
	assert.Equal(t, 2, strings.Count(text, "Please input your guess."))
	assert.NotContains(t, text, "Too Small")
	assert.NotContains(t, text, "Too Large")
	assert.Equal(t, 1, strings.Count(text, "You Win!"))
}

func TestRunGame_InputClosed(t *testing.T) {
	cmd, out := newTestCmd(t, 50, "10\n")

	err := runGame(cmd, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, game.ErrInputClosed)
	assert.NotContains(t, out.String(), "You Win!")
}

func TestRunGame_InputClosedLogsOnce(t *testing.T) {
	cmd, _ := newTestCmd(t, 50, "")
	core, logs := observer.New(zap.WarnLevel)
	logger = zap.New(core)

	require.ErrorIs(t, runGame(cmd, nil), game.ErrInputClosed)

	errs := logs.FilterLevelExact(zap.ErrorLevel).All()
	require.Len(t, errs, 1)
	assert.Equal(t, "session aborted", errs[0].Message)
}

func TestRunGame_RevealFromConfig(t *testing.T) {
	cmd, out := newTestCmd(t, 9, "9\n")
	cfg.RevealTarget = true

	require.NoError(t, runGame(cmd, nil))
	assert.Contains(t, out.String(), "The secret number is: 9")
}

func TestSetup_ConfigFile(t *testing.T) {
	cmd, _ := newTestCmd(t, 1, "")

	c := config.DefaultConfig()
	c.Range.Min, c.Range.Max = 10, 20
	require.NoError(t, c.Save(configPath))

	require.NoError(t, setup(cmd, nil))
	assert.Equal(t, game.Range{Min: 10, Max: 20}, cfg.GameRange())
}

func TestSetup_InvalidConfig(t *testing.T) {
	cmd, _ := newTestCmd(t, 1, "")
	require.NoError(t, os.WriteFile(configPath, []byte("range:\n  min: 10\n  max: 1\n"), 0644))

	err := setup(cmd, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, game.ErrInvalidRange)
}

func TestSetup_FlagOverrides(t *testing.T) {
	_, _ = newTestCmd(t, 1, "")
	path := configPath
	t.Cleanup(func() {
		minFlag, maxFlag, reveal, plain, verbose, useTUI = 0, 0, false, false, false, false
	})

	cmd := &cobra.Command{Use: "guess"}
	registerFlags(cmd)
	require.NoError(t, cmd.ParseFlags([]string{"--config", path, "--min", "5", "--max", "9", "--reveal", "--plain", "-v"}))
	require.NoError(t, setup(cmd, nil))

	assert.Equal(t, game.Range{Min: 5, Max: 9}, cfg.GameRange())
	assert.True(t, cfg.RevealTarget)
	assert.Equal(t, "plain", cfg.Output.Style)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

// executeRoot runs rootCmd with args and restores its flag state afterwards.
func executeRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() {
		for _, fs := range []*pflag.FlagSet{rootCmd.PersistentFlags(), rootCmd.Flags(), configInitCmd.Flags()} {
			fs.VisitAll(func(f *pflag.Flag) {
				_ = f.Value.Set(f.DefValue)
				f.Changed = false
			})
		}
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})

	var out bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestExecute_ConfigInitForceRepairsInvalidFile(t *testing.T) {
	_, _ = newTestCmd(t, 1, "")
	path := filepath.Join(t.TempDir(), "guess.yaml")
	require.NoError(t, os.WriteFile(path, []byte("range: {min: 10, max: 1}\n"), 0644))

	out, err := executeRoot(t, "--config", path, "config", "init", "--force")
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote "+path)

	loaded, err := config.Load(path)
	require.NoError(t, err)
	require.NoError(t, loaded.Validate())
	assert.Equal(t, config.DefaultConfig(), loaded)
}

func TestExecute_PlayRejectsInvalidFile(t *testing.T) {
	_, _ = newTestCmd(t, 1, "")
	path := filepath.Join(t.TempDir(), "guess.yaml")
	require.NoError(t, os.WriteFile(path, []byte("range: {min: 10, max: 1}\n"), 0644))

	_, err := executeRoot(t, "--config", path)
	assert.ErrorIs(t, err, game.ErrInvalidRange)
}

func TestRenderRules(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderRules(&buf, game.DefaultRange, false))

	text := buf.String()
	assert.Contains(t, text, "Guess the number")
	assert.Contains(t, text, "Too Small")
	assert.Contains(t, text, "Too Large")
	assert.Contains(t, text, "You Win!")
}

func TestConfigInit(t *testing.T) {
	cmd, out := newTestCmd(t, 1, "")
	t.Cleanup(func() { forceInit = false })
	path := filepath.Join(t.TempDir(), "conf", "guess.yaml")

	require.NoError(t, runConfigInit(cmd, []string{path}))
	assert.Contains(t, out.String(), "Wrote "+path)

	loaded, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), loaded)

	assert.Error(t, runConfigInit(cmd, []string{path}))

	forceInit = true
	assert.NoError(t, runConfigInit(cmd, []string{path}))
}

func TestConfigShow(t *testing.T) {
	cmd, out := newTestCmd(t, 1, "")

	require.NoError(t, configShowCmd.RunE(cmd, nil))
	assert.Contains(t, out.String(), "max: 100")
	assert.Contains(t, out.String(), "reveal_target: false")
}
