// Package commands provides the command-line interface for the giopg tool.
//
// It implements commands for:
//   - encryption
//   - decryption
//
// The package handles command-line parsing, configuration validation,
// and environment variable binding through cobra and viper.
package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/idelchi/giopg/internal/config"
)

// envPrefix namespaces the environment variables bound to flags.
const envPrefix = "GIOPG"

// bind merges flags and GIOPG_* environment variables into cfg.
func bind(v *viper.Viper, cmd *cobra.Command, cfg *config.Config) error {
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("binding flags: %w", err)
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("parsing config: %w", err)
	}

	return nil
}

// preRun returns a PreRunE handler that records the action and positional
// args in cfg and validates the configuration.
func preRun(cfg *config.Config, action config.Action) func(*cobra.Command, []string) error {
	return func(_ *cobra.Command, args []string) error {
		cfg.Action = action
		cfg.Files = args

		return cfg.Validate()
	}
}
