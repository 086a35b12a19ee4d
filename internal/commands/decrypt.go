package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/giopg/internal/config"
	"github.com/idelchi/giopg/internal/logic"
)

// NewDecryptCommand creates a new cobra command for the decrypt subcommand.
func NewDecryptCommand(cfg *config.Config, streams logic.Streams) *cobra.Command {
	return &cobra.Command{
		Use:     "decrypt [flags] files...",
		Aliases: []string{"dec"},
		Short:   "Decrypt files",
		Args:    cobra.MinimumNArgs(1),
		PreRunE: preRun(cfg, config.ActionDecrypt),
		RunE: func(_ *cobra.Command, _ []string) error {
			return logic.Run(cfg, streams)
		},
	}
}
