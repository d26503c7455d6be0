package species

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeManifest drops an HCL manifest into a fresh temp dir and returns it.
func writeManifest(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "species.hcl"), []byte(content), 0644))
	return dir
}

func TestLoadManifests(t *testing.T) {
	dir := writeManifest(t, `
species "iron" {
  aliases = ["iron", "fe", "fe+"]
  charge  = 1
  mass    = 55.845
}
`)
	reg := New()
	require.NoError(t, reg.LoadManifests(context.Background(), dir))

	s, ok := reg.Resolve("Fe+")
	require.True(t, ok)
	assert.Equal(t, "iron", s.Tag)
	assert.Equal(t, 1.0, s.Charge)
	assert.Equal(t, 55.845, s.Mass)

	s, _ = reg.Resolve("proton")
	assert.Equal(t, "proton", s.Tag, "built-ins survive a manifest load")
}

func TestLoadManifestsValidation(t *testing.T) {
	testCases := []struct {
		name     string
		manifest string
	}{
		{
			name: "non-positive mass",
			manifest: `
species "ghost" {
  aliases = ["ghost"]
  charge  = 0
  mass    = 0
}
`,
		},
		{
			name: "no aliases",
			manifest: `
species "nameless" {
  aliases = []
  charge  = 1
  mass    = 1
}
`,
		},
		{
			name:     "unparseable file",
			manifest: `species "broken" {`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			dir := writeManifest(t, tc.manifest)
			err := New().LoadManifests(context.Background(), dir)
			assert.Error(t, err)
		})
	}
}

func TestLoadManifestsEmptyDir(t *testing.T) {
	reg := New()
	before := reg.Len()
	require.NoError(t, reg.LoadManifests(context.Background(), t.TempDir()))
	assert.Equal(t, before, reg.Len())
}
