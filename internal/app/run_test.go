package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestConvertWritesCanonicalFile(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "AMPS_PARAM.in", "#GENERAL\nRUN_NAME rewrite_me\nSPECIES h+\n#FIELDS\nKP 4\n")
	out := filepath.Join(dir, "canonical.in")

	buf := &bytes.Buffer{}
	cfg, err := NewConfig(Config{ParamPath: in, OutPath: out, LogLevel: "error", LogFormat: "text"})
	require.NoError(t, err)

	require.NoError(t, NewApp(buf, cfg).Run(context.Background()))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, "RUN_NAME")
	assert.Contains(t, text, "rewrite_me")
	assert.Regexp(t, `(?m)^SPECIES\s+proton$`, text, "the species alias is canonicalized")
	assert.Regexp(t, `(?m)^KP\s+4$`, text)
}

func TestCheckOnlyStopsAfterGate(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "AMPS_PARAM.in", "#GENERAL\nRUN_NAME x\n")

	buf := &bytes.Buffer{}
	cfg, err := NewConfig(Config{ParamPath: in, CheckOnly: true, LogLevel: "error"})
	require.NoError(t, err)

	require.NoError(t, NewApp(buf, cfg).Run(context.Background()))
	assert.Equal(t, "OK\n", buf.String())
}

func TestConvertRejectsForeignFile(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "notes.txt", "shopping list\n")

	buf := &bytes.Buffer{}
	cfg, err := NewConfig(Config{ParamPath: in, LogLevel: "error"})
	require.NoError(t, err)

	err = NewApp(buf, cfg).Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no recognized section header")
}

func TestConvertMissingFile(t *testing.T) {
	buf := &bytes.Buffer{}
	cfg, err := NewConfig(Config{ParamPath: filepath.Join(t.TempDir(), "absent.in"), LogLevel: "error"})
	require.NoError(t, err)

	err = NewApp(buf, cfg).Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read param file")
}

func TestNewConfigValidation(t *testing.T) {
	_, err := NewConfig(Config{})
	assert.Error(t, err, "one-shot mode needs a param path")

	_, err = NewConfig(Config{Listen: ":0"})
	assert.NoError(t, err, "serve mode needs no param path")
}

func TestNewAppLoadsManifests(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "species.hcl", `
species "iron" {
  aliases = ["fe+"]
  charge  = 1
  mass    = 55.845
}
`)
	cfg, err := NewConfig(Config{Listen: ":0", SpeciesPath: dir, LogLevel: "error"})
	require.NoError(t, err)

	a := NewApp(&bytes.Buffer{}, cfg)
	assert.True(t, a.Species().Known("fe+"))
}
