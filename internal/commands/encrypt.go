package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/giopg/internal/config"
	"github.com/idelchi/giopg/internal/logic"
)

// NewEncryptCommand creates a new cobra command for the encrypt subcommand.
func NewEncryptCommand(cfg *config.Config, streams logic.Streams) *cobra.Command {
	return &cobra.Command{
		Use:     "encrypt [flags] files...",
		Aliases: []string{"enc"},
		Short:   "Encrypt files",
		Args:    cobra.MinimumNArgs(1),
		PreRunE: preRun(cfg, config.ActionEncrypt),
		RunE: func(_ *cobra.Command, _ []string) error {
			return logic.Run(cfg, streams)
		},
	}
}
