package fluid

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfigMatchesReferenceSetup(t *testing.T) {
	c := DefaultConfig()

	require.Equal(t, 1.94, c.Params.Overrelaxation)
	require.Equal(t, 100, c.Params.ProjIterations)
	require.False(t, c.Params.WithGravity)
	require.Equal(t, 7.2, c.Params.Gravity)
	require.Equal(t, 10.0, c.Params.Density)
	require.Equal(t, 10.0, c.Params.WindSpeed)
	require.Equal(t, 9, c.Params.NumBands)
	require.Equal(t, 5, c.Params.BandWidth)
	require.Equal(t, 0.22, c.Params.Dt)
	require.Equal(t, 0.4, c.Params.CellSize)
}

func TestFromMapOverrides(t *testing.T) {
	c := FromMap(map[string]string{
		"w":              "64",
		"h":              "48",
		"overrelaxation": "1.5",
		"iterations":     "20",
		"with_gravity":   "true",
		"bands":          "3",
	})

	require.Equal(t, 64, c.Width)
	require.Equal(t, 48, c.Height)
	require.Equal(t, 1.5, c.Params.Overrelaxation)
	require.Equal(t, 20, c.Params.ProjIterations)
	require.True(t, c.Params.WithGravity)
	require.Equal(t, 3, c.Params.NumBands)

	// Untouched keys keep their defaults.
	require.Equal(t, 0.22, c.Params.Dt)
}

func TestFromMapIgnoresBadValues(t *testing.T) {
	c := FromMap(map[string]string{
		"w":          "not-a-number",
		"h":          "-4",
		"iterations": "0",
	})

	d := DefaultConfig()
	require.Equal(t, d.Width, c.Width)
	require.Equal(t, d.Height, c.Height)
	require.Equal(t, d.Params.ProjIterations, c.Params.ProjIterations)
}

func TestLoadFileMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sim.yaml")
	doc := []byte("width: 32\nheight: 24\nparams:\n  overrelaxation: 1.6\n  with_gravity: true\n")
	require.NoError(t, os.WriteFile(path, doc, 0o644))

	c, err := LoadFile(path)
	require.NoError(t, err)

	require.Equal(t, 32, c.Width)
	require.Equal(t, 24, c.Height)
	require.Equal(t, 1.6, c.Params.Overrelaxation)
	require.True(t, c.Params.WithGravity)

	// Keys absent from the file keep their defaults.
	require.Equal(t, 100, c.Params.ProjIterations)
	require.Equal(t, 0.4, c.Params.CellSize)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
