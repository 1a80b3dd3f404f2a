package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"scorecard/pkg/woe"
)

func TestLoad_Default(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	require.Equal(t, woe.DefaultConfig(), c.Binning)
	require.Equal(t, 600.0, c.Score.Base)
	require.Equal(t, 4, c.Workers)
}

func TestLoad_Partial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
binning:
  max_bins: 6
  min_bin_fraction: 0.1
  smooth_zero_counts: true
score:
  base: 500
workers: 2
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	c, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 6, c.Binning.MaxBins)
	require.Equal(t, 0.1, c.Binning.MinBinFraction)
	require.True(t, c.Binning.SmoothZeroCounts)
	require.Equal(t, woe.DefaultMaxDistinctValues, c.Binning.MaxDistinctValues)
	require.Equal(t, woe.DefaultSeparator, c.Binning.Separator)
	require.Equal(t, 500.0, c.Score.Base)
	require.Equal(t, 20.0, c.Score.PDO)
	require.Equal(t, 2, c.Workers)
}

func TestLoad_Invalid(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)

	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("binning:\n  max_bins: 1\n"), 0600))
	_, err = Load(path)
	require.Error(t, err)

	require.NoError(t, os.WriteFile(path, []byte("workers: [1\n"), 0600))
	_, err = Load(path)
	require.Error(t, err)
}

func TestSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	c := Default()
	c.Binning.MinBinsFloor = 3
	require.NoError(t, Save(path, c))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, c, loaded)

	require.Error(t, Save(path, nil))
}
