// Package config holds the runtime configuration of giopg and its validation rules.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Suffixes controls how output file names are derived when no explicit output is given.
type Suffixes struct {
	// Encrypt is appended to encrypted files
	Encrypt string `mapstructure:"encrypt-ext" label:"--encrypt-ext"`

	// Decrypt is appended to decrypted files, after stripping Encrypt
	Decrypt string `mapstructure:"decrypt-ext" label:"--decrypt-ext"`
}

// Config holds the configuration for a single giopg invocation.
type Config struct {
	// Action is set by the selected command
	Action Action `validate:"oneof=encrypt decrypt" label:"action"`

	// Output overrides the derived output path; only valid for a single input
	Output string `validate:"solo=Files" label:"--output"`

	// Passphrase asks for a passphrase interactively instead of using the empty one
	Passphrase bool

	// Parallel is the number of files processed concurrently
	Parallel int `validate:"min=1" label:"--parallel"`

	// Quiet suppresses per-file output
	Quiet bool

	// Delete removes the source after it was processed successfully
	Delete bool

	// Stats prints a summary after processing
	Stats bool

	// Show prints the configuration and exits
	Show bool

	// Dry previews the input and output pairs without writing anything
	Dry bool

	// PreserveTimestamps copies the source modification time onto the output
	PreserveTimestamps bool `mapstructure:"preserve-timestamps"`

	// LogLevel is the hclog level name
	LogLevel string `mapstructure:"log-level" validate:"oneof=trace debug info warn error off" label:"--log-level"`

	// LogJSON switches the log output to JSON lines
	LogJSON bool `mapstructure:"log-json"`

	Suffixes Suffixes `mapstructure:",squash"`

	// Files are the positional input paths
	Files []string `validate:"min=1,dive,required" label:"files"`
}

// Validate checks the configuration against its struct tags and the custom rules.
func (c *Config) Validate() error {
	validate := validator.New(validator.WithRequiredStructEnabled())

	if err := registerSolo(validate); err != nil {
		return err
	}

	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validating configuration: %w", describe(err))
	}

	if c.Action.Decrypt() && c.Output == "" && c.Suffixes.Encrypt == "" && c.Suffixes.Decrypt == "" {
		return errors.New("validating configuration: decrypting in place needs --output or a suffix")
	}

	return nil
}

// describe flattens validator errors into one readable message.
func describe(err error) error {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return err
	}

	messages := make([]string, 0, len(errs))

	for _, fe := range errs {
		switch fe.Tag() {
		case "solo":
			messages = append(messages, fmt.Sprintf("%s can only be used with a single input file", fe.Field()))
		case "oneof":
			messages = append(messages, fmt.Sprintf("%s must be one of [%s], got %q", fe.Field(), fe.Param(), fe.Value()))
		case "min":
			messages = append(messages, fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param()))
		default:
			messages = append(messages, fmt.Sprintf("%s failed on %q", fe.Field(), fe.Tag()))
		}
	}

	return errors.New(strings.Join(messages, "; "))
}
