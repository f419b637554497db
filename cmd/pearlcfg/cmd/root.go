// Package cmd implements the pearlcfg command line.
package cmd

import (
	"fmt"
	"io"
	"os"

	"pearlcfg/internal/config"
	"pearlcfg/internal/core"
	"pearlcfg/internal/model"
	"pearlcfg/internal/util"

	"github.com/spf13/cobra"
)

var (
	cfgPath string
	debug   bool

	cfg     *model.Config
	adapter *core.Adapter
)

var rootCmd = &cobra.Command{
	Use:           "pearlcfg",
	Short:         "Translate device configuration responses",
	Long:          "pearlcfg parses the KEY = VALUE responses of a streaming device's configuration API\nand builds the query strings used to change its settings.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		loaded, err := config.Load(cfgPath)
		if err != nil {
			return err
		}
		if debug {
			loaded.LogLevel = "debug"
		}
		cfg = loaded

		logger := util.SetupLogger(cfg.LogLevel, cfg.LogFormat)
		adapter = core.NewAdapter(cfg, logger)
		logger.Debug("configuration loaded", "path", cfgPath, "devices", len(cfg.Devices))
		return nil
	},
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		util.Error("command failed: %v", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "path to configuration file (default $HOME/.pearlcfg/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
}

// readInput returns the contents of the named file, or of stdin when name is
// empty or "-".
func readInput(cmd *cobra.Command, name string) (string, error) {
	if name == "" || name == "-" {
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("error reading stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("error reading %s: %w", name, err)
	}
	return string(b), nil
}
