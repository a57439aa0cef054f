package etfperf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
prices_file: /data/prices.csv
investment: 250000
`), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "/data/prices.csv", cfg.PricesFile)
	assert.Equal(t, 250_000.0, cfg.Investment)
	// Unset keys keep their defaults.
	assert.Equal(t, "tx_etf.csv", cfg.TransactionsFile)
	assert.Equal(t, ":8000", cfg.Listen)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("investment: -5\n"), 0o644))
	_, err = LoadConfig(path)
	assert.ErrorAs(t, err, &InvalidArgumentError{})
}
