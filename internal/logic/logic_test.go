package logic_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idelchi/giopg/internal/config"
	"github.com/idelchi/giopg/internal/encryption"
	"github.com/idelchi/giopg/internal/logic"
)

func passphraseFile(t *testing.T, content string) *os.File {
	t.Helper()

	path := filepath.Join(t.TempDir(), "passphrase")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	f, err := os.Open(path)
	require.NoError(t, err)

	t.Cleanup(func() { f.Close() })

	return f
}

func newConfig(action config.Action, prompt bool, files ...string) *config.Config {
	return &config.Config{
		Action:     action,
		Passphrase: prompt,
		Parallel:   1,
		LogLevel:   "off",
		Stats:      true,
		Suffixes:   config.Suffixes{Encrypt: ".giopg"},
		Files:      files,
	}
}

func TestRunWithPromptedPassphrase(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := filepath.Join(dir, "secret.txt")
	require.NoError(t, os.WriteFile(input, []byte("My secret content"), 0o600))

	var out, errs bytes.Buffer

	streams := logic.Streams{In: passphraseFile(t, "My_P4ssPhr4s3_Str1ng\n"), Out: &out, Err: &errs}
	require.NoError(t, logic.Run(newConfig(config.ActionEncrypt, true, input), streams))

	assert.Contains(t, out.String(), "Processed: 1 file(s)")
	assert.Contains(t, out.String(), "Errors:    0")

	require.NoError(t, os.Remove(input))

	streams = logic.Streams{In: passphraseFile(t, "Blah\n"), Out: &out, Err: &errs}
	err := logic.Run(newConfig(config.ActionDecrypt, true, input+".giopg"), streams)
	require.ErrorIs(t, err, encryption.ErrDecrypt)
	assert.NoFileExists(t, input)

	streams = logic.Streams{In: passphraseFile(t, "My_P4ssPhr4s3_Str1ng\n"), Out: &out, Err: &errs}
	require.NoError(t, logic.Run(newConfig(config.ActionDecrypt, true, input+".giopg"), streams))

	data, err := os.ReadFile(input)
	require.NoError(t, err)
	assert.Equal(t, "My secret content", string(data))
}

func TestRunDefaultsToEmptyPassphrase(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := filepath.Join(dir, "secret.txt")
	require.NoError(t, os.WriteFile(input, []byte("content"), 0o600))

	var out, errs bytes.Buffer

	streams := logic.Streams{Out: &out, Err: &errs}
	require.NoError(t, logic.Run(newConfig(config.ActionEncrypt, false, input), streams))

	sealed, err := os.Open(input + ".giopg")
	require.NoError(t, err)

	defer sealed.Close()

	var plain bytes.Buffer
	require.NoError(t, encryption.NewSealer().Decrypt("", sealed, &plain))
	assert.Equal(t, "content", plain.String())
}

func TestRunFailsWithoutPassphraseInput(t *testing.T) {
	t.Parallel()

	var out, errs bytes.Buffer

	streams := logic.Streams{In: passphraseFile(t, ""), Out: &out, Err: &errs}
	err := logic.Run(newConfig(config.ActionEncrypt, true, "unused"), streams)
	require.ErrorContains(t, err, "obtaining passphrase")
}

func TestRunDryDoesNotWrite(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := filepath.Join(dir, "secret.txt")
	require.NoError(t, os.WriteFile(input, []byte("content"), 0o600))

	cfg := newConfig(config.ActionEncrypt, true, input)
	cfg.Dry = true

	var out, errs bytes.Buffer

	// No passphrase input is available: a dry run must not ask for one.
	streams := logic.Streams{In: passphraseFile(t, ""), Out: &out, Err: &errs}
	require.NoError(t, logic.Run(cfg, streams))

	assert.Contains(t, out.String(), `Processed "`+input+`" -> "`+input+`.giopg"`)
	assert.Contains(t, out.String(), "Processed: 1 file(s), 7 B")
	assert.NoFileExists(t, input+".giopg")
}

func TestRunShowPrintsConfiguration(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := filepath.Join(dir, "secret.txt")
	require.NoError(t, os.WriteFile(input, []byte("content"), 0o600))

	cfg := newConfig(config.ActionEncrypt, false, input)
	cfg.Show = true

	var out, errs bytes.Buffer

	require.NoError(t, logic.Run(cfg, logic.Streams{Out: &out, Err: &errs}))

	assert.Contains(t, out.String(), "action: encrypt")
	assert.Contains(t, out.String(), input)
	assert.NoFileExists(t, input+".giopg")
}
