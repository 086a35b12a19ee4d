package encryption

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
	"golang.org/x/sync/errgroup"

	"github.com/idelchi/giopg/internal/config"
	"github.com/idelchi/giopg/internal/fileutil"
)

// Result is the outcome of processing a single file.
type Result struct {
	Input      string
	Output     string
	OutputSize int64
	Error      error
}

// Processor handles the encryption and decryption of files.
type Processor struct {
	// cfg contains runtime configuration options
	cfg *config.Config

	// sealer performs the actual transform
	sealer *Sealer

	// passphrase is shared by every file of the run
	passphrase string

	log hclog.Logger

	// stdout and stderr receive the per-file report
	stdout io.Writer
	stderr io.Writer

	// results channels processing outcomes to the printer goroutine
	results chan Result
}

// NewProcessor creates a new Processor with the given configuration.
func NewProcessor(cfg *config.Config, sealer *Sealer, passphrase string, log hclog.Logger) *Processor {
	if log == nil {
		log = hclog.NewNullLogger()
	}

	return &Processor{
		cfg:        cfg,
		sealer:     sealer,
		passphrase: passphrase,
		log:        log,
		stdout:     os.Stdout,
		stderr:     os.Stderr,
		results:    make(chan Result, len(cfg.Files)),
	}
}

// SetOutput redirects the per-file report.
func (p *Processor) SetOutput(stdout, stderr io.Writer) {
	p.stdout = stdout
	p.stderr = stderr
}

// ProcessFiles concurrently processes all files specified in the configuration.
// It encrypts or decrypts files based on the configured action.
// Returns the number of successfully processed files, the number of errors and
// the total size of the written outputs.
//
//nolint:cyclop,gocognit
func (p *Processor) ProcessFiles() (processed, errored int, totalSize int64, err error) {
	group := errgroup.Group{}
	group.SetLimit(p.cfg.Parallel)

	done := make(chan struct{})

	go func() {
		defer close(done)

		for result := range p.results {
			if result.Error != nil {
				errored++

				fmt.Fprintf(p.stderr, "Error processing %q: %v\n", result.Input, result.Error)

				continue
			}

			processed++

			totalSize += result.OutputSize

			if !p.cfg.Quiet {
				fmt.Fprintf(p.stdout, "Processed %q -> %q\n", result.Input, result.Output)
			}

			if p.cfg.Delete {
				if err := os.Remove(result.Input); err != nil {
					fmt.Fprintf(p.stderr, "Error deleting %q: %v\n", result.Input, err)

					continue
				}

				if !p.cfg.Quiet {
					fmt.Fprintf(p.stdout, "Deleted %q\n", result.Input)
				}
			}
		}
	}()

	for _, file := range p.cfg.Files {
		group.Go(func() error {
			outPath := p.OutputPath(file)

			size, err := p.processFile(file, outPath)
			if err != nil {
				p.results <- Result{Input: file, Error: err}

				return err
			}

			p.results <- Result{Input: file, Output: outPath, OutputSize: size}

			return nil
		})
	}

	err = group.Wait()

	close(p.results)

	<-done // Wait for printer to finish

	if err != nil {
		return processed, errored, totalSize, fmt.Errorf("processing files: %w", err)
	}

	return processed, errored, totalSize, nil
}

// processFile handles the encryption or decryption of a single file.
// It writes into a temporary file and renames it onto outPath only on success.
func (p *Processor) processFile(filename, outPath string) (size int64, err error) {
	same, err := fileutil.SameFile(filename, outPath)
	if err != nil {
		return 0, err
	}

	if same {
		return 0, fmt.Errorf("%w: %q", ErrSameFile, filename)
	}

	tc, err := fileutil.NewTempContext(outPath)
	if err != nil {
		return 0, fmt.Errorf("preparing atomic write: %w", err)
	}

	defer tc.CleanupOnError(&err)

	inFile, err := os.Open(filepath.Clean(filename))
	if err != nil {
		return 0, fmt.Errorf("opening input file: %w", err)
	}
	defer inFile.Close()

	log := p.log.With("input", filename, "output", outPath)

	if p.cfg.Action.Decrypt() {
		log.Debug("decrypting")

		if err := p.sealer.Decrypt(p.passphrase, inFile, tc.TmpFile); err != nil {
			return 0, fmt.Errorf("decrypting file: %w", err)
		}
	} else {
		log.Debug("encrypting")

		if err := p.sealer.Encrypt(p.passphrase, inFile, tc.TmpFile); err != nil {
			return 0, fmt.Errorf("encrypting file: %w", err)
		}
	}

	var modTime time.Time

	if p.cfg.PreserveTimestamps {
		info, err := inFile.Stat()
		if err != nil {
			return 0, fmt.Errorf("getting file info for %q: %w", filename, err)
		}

		modTime = info.ModTime()
	}

	if err := inFile.Close(); err != nil {
		return 0, fmt.Errorf("closing input file: %w", err)
	}

	size, err = tc.Commit(modTime)
	if err != nil {
		return 0, err
	}

	log.Debug("written", "size", size)

	return size, nil
}

// OutputPath generates the output file path based on the input filename
// and the configured suffixes, unless an explicit output was given.
func (p *Processor) OutputPath(filename string) string {
	if p.cfg.Output != "" {
		return p.cfg.Output
	}

	ext := p.cfg.Suffixes.Encrypt

	if p.cfg.Action.Decrypt() {
		filename = strings.TrimSuffix(filename, p.cfg.Suffixes.Encrypt)
		ext = p.cfg.Suffixes.Decrypt
	}

	return filepath.Join(filepath.Dir(filename),
		filepath.Base(filename)+ext)
}
