package commands

import (
	"runtime"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/idelchi/giopg/internal/config"
	"github.com/idelchi/giopg/internal/logging"
	"github.com/idelchi/giopg/internal/logic"
)

// NewRootCommand creates the root command with common configuration.
// It sets up environment variable binding and flag handling, and also accepts
// the action as its first positional argument: `giopg <encrypt|decrypt> files...`.
func NewRootCommand(cfg *config.Config, version string, streams logic.Streams) *cobra.Command {
	v := viper.New()

	root := &cobra.Command{
		Use:   "giopg [flags] <encrypt|decrypt> files...",
		Short: "Encrypt and decrypt files with a passphrase",
		Long: `Encrypts/decrypts files using two layers of symmetric encryption plus random padding.

The passphrase is empty unless --passphrase is given, in which case it is read
without echo from the terminal, or from the first line of stdin when piped.`,
		Version:      version,
		SilenceUsage: true,
		Args:         cobra.ArbitraryArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return bind(v, cmd, cfg)
		},
		// Named subcommands take precedence, so this path is reached with
		// `giopg -- <action> files...` or with an unknown action.
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return nil
			}

			action, err := config.ParseAction(args[0])
			if err != nil {
				return err
			}

			return preRun(cfg, action)(cmd, args[1:])
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}

			return logic.Run(cfg, streams)
		},
	}

	flags := root.PersistentFlags()

	flags.StringP("output", "o", "", "Output file, only valid with a single input")
	flags.BoolP("passphrase", "p", false, "Ask for a passphrase interactively, otherwise an empty passphrase is used")
	flags.IntP("parallel", "j", runtime.NumCPU(), "Number of parallel workers, defaults to number of CPUs")
	flags.BoolP("quiet", "q", false, "Suppress non-error output")
	flags.Bool("delete", false, "Delete the original file after successful encryption/decryption")
	flags.Bool("stats", false, "Print a summary after processing")
	flags.BoolP("show", "s", false, "Show the configuration and exit")
	flags.Bool("dry", false, "Preview the files that would be processed without writing anything")
	flags.Bool("preserve-timestamps", false, "Copy the modification time of each input onto its output")
	flags.String("encrypt-ext", ".giopg", "Suffix to append to encrypted files")
	flags.String("decrypt-ext", "", "Suffix to append to decrypted files, after stripping the encrypted suffix")
	flags.String("log-level", logging.DefaultLevel, "Log level (trace, debug, info, warn, error, off)")
	flags.Bool("log-json", false, "Write logs as JSON")

	root.AddCommand(NewEncryptCommand(cfg, streams), NewDecryptCommand(cfg, streams))

	return root
}
