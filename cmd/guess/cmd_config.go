package main

import (
	"fmt"
	"os"

	"guessgame/internal/config"
	"guessgame/internal/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var forceInit bool

// configCmd groups config file helpers
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or create the config file",
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write the default config file",
	Long: `Writes the default configuration as YAML. The path defaults to the
--config flag. An existing file is kept unless --force is given.`,
	Args: cobra.MaximumNArgs(1),
	// The file being replaced may not load, so skip the root setup.
	PersistentPreRunE: setupDefaultLogger,
	RunE:              runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := cfg.Marshal()
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

func init() {
	configInitCmd.Flags().BoolVarP(&forceInit, "force", "f", false, "Overwrite an existing file")
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}

// setupDefaultLogger builds the logger from default settings without reading
// any config file.
func setupDefaultLogger(cmd *cobra.Command, args []string) error {
	lc := config.DefaultConfig().Logging
	if verbose {
		lc.Level = "debug"
	}
	l, err := logging.New(lc)
	if err != nil {
		return err
	}
	logger = l
	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := configPath
	if len(args) > 0 {
		path = args[0]
	}

	if _, err := os.Stat(path); err == nil && !forceInit {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	if err := config.DefaultConfig().Save(path); err != nil {
		return err
	}
	logging.For(logger, logging.CategoryConfig).Info("config written", zap.String("path", path))
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}
