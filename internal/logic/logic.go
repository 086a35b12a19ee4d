// Package logic implements the core business logic for the encryption/decryption.
package logic

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/goccy/go-yaml"

	"github.com/idelchi/giopg/internal/config"
	"github.com/idelchi/giopg/internal/encryption"
	"github.com/idelchi/giopg/internal/logging"
	"github.com/idelchi/giopg/internal/passphrase"
)

// Streams are the process streams a run reads the passphrase from and reports to.
type Streams struct {
	In  *os.File
	Out io.Writer
	Err io.Writer
}

// DefaultStreams returns the standard process streams.
func DefaultStreams() Streams {
	return Streams{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
}

// Run is the main logic of the application.
func Run(cfg *config.Config, streams Streams) error {
	start := time.Now()

	log := logging.NewLogger("giopg", cfg.LogLevel, streams.Err, cfg.LogJSON)
	log.Debug("configuration",
		"action", string(cfg.Action),
		"files", len(cfg.Files),
		"parallel", cfg.Parallel,
		"prompt", cfg.Passphrase,
	)

	if cfg.Show {
		return show(cfg, streams.Out)
	}

	if cfg.Dry {
		proc := encryption.NewProcessor(cfg, nil, "", log.Named("processor"))

		return dryRun(cfg, proc, streams.Out, start)
	}

	secret, err := readPassphrase(cfg, streams)
	if err != nil {
		return err
	}

	sealer := encryption.NewSealer(encryption.WithLogger(log.Named("sealer")))

	proc := encryption.NewProcessor(cfg, sealer, secret, log.Named("processor"))
	proc.SetOutput(streams.Out, streams.Err)

	processed, errored, totalSize, err := proc.ProcessFiles()

	if cfg.Stats {
		printStats(streams.Out, processed, errored, totalSize, time.Since(start))
	}

	if err != nil {
		return fmt.Errorf("running logic: %w", err)
	}

	return nil
}

// readPassphrase prompts for the passphrase when asked to, and uses the empty one otherwise.
func readPassphrase(cfg *config.Config, streams Streams) (string, error) {
	if !cfg.Passphrase {
		return "", nil
	}

	secret, err := passphrase.Prompt(streams.In, streams.Err, "Passphrase: ")
	if err != nil {
		return "", fmt.Errorf("obtaining passphrase: %w", err)
	}

	return secret, nil
}

// show prints the resolved configuration as YAML.
func show(cfg *config.Config, w io.Writer) error {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshalling configuration: %w", err)
	}

	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("writing configuration: %w", err)
	}

	return nil
}

// dryRun previews what would be processed without reading the passphrase or writing any file.
func dryRun(cfg *config.Config, proc *encryption.Processor, w io.Writer, start time.Time) error {
	var totalSize int64

	for _, file := range cfg.Files {
		if !cfg.Quiet {
			fmt.Fprintf(w, "Processed %q -> %q\n", file, proc.OutputPath(file))
		}

		if cfg.Stats {
			if info, err := os.Stat(file); err == nil {
				totalSize += info.Size()
			}
		}
	}

	if cfg.Stats {
		printStats(w, len(cfg.Files), 0, totalSize, time.Since(start))
	}

	return nil
}

func printStats(w io.Writer, processed, errored int, totalSize int64, elapsed time.Duration) {
	fmt.Fprintf(w, "Processed: %d file(s), %s\n", processed, humanize.Bytes(uint64(totalSize))) //nolint:gosec
	fmt.Fprintf(w, "Errors:    %d\n", errored)
	fmt.Fprintf(w, "Elapsed:   %s\n", elapsed.Round(time.Millisecond))
}
