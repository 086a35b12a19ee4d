// Command giopg encrypts and decrypts files with a passphrase.
package main

import (
	"os"

	"github.com/idelchi/giopg/internal/commands"
	"github.com/idelchi/giopg/internal/config"
	"github.com/idelchi/giopg/internal/logic"
)

// version is set at build time.
var version = "unknown"

func main() {
	cfg := &config.Config{}

	root := commands.NewRootCommand(cfg, version, logic.DefaultStreams())
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
