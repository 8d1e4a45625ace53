package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := loadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "TL", cfg.Currency)
	assert.False(t, cfg.StrictExit)
	assert.Equal(t, "text", cfg.Output.Format)

	sc := cfg.Scenario
	assert.Equal(t, int64(1), sc.OrderID)
	assert.Equal(t, "Confirmed", sc.Status)
	assert.Equal(t, "card", sc.Payment)
	assert.Equal(t, []string{"1:Elma:10", "2:Armut:15"}, sc.Products)
	assert.Equal(t, "percentage", sc.Discount.Type)
	assert.Equal(t, "10", sc.Discount.Value)
	assert.Equal(t, "individual", sc.Customer.Kind)
}

func TestLoadConfig_Env(t *testing.T) {
	t.Setenv("MARKET_CURRENCY", "EUR")
	t.Setenv("MARKET_STRICT_EXIT", "true")

	cfg, err := loadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "EUR", cfg.Currency)
	assert.True(t, cfg.StrictExit)
}

func TestLoadConfig_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("currency: USD\n"), 0o600))

	cfg, err := loadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "USD", cfg.Currency)
	assert.Equal(t, "text", cfg.Output.Format)
}

func TestLoadConfig_InvalidFormat(t *testing.T) {
	t.Setenv("MARKET_OUTPUT_FORMAT", "xml")

	_, err := loadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output format")
}
