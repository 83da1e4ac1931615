package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fk219/Send-My-Invoice/pkg/config"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "clarity-invoices", cfg.App.Name)
	assert.Equal(t, "127.0.0.1:8080", cfg.HTTP.Addr())
	assert.Equal(t, "INV-{YYYY}-{NNNN}", cfg.Numbering.DefaultFormat)
	assert.False(t, cfg.Numbering.SubstituteMonth)
	assert.Equal(t, "gemini", cfg.AI.Provider)
	assert.False(t, cfg.Storage.InMemory())
}

func TestLoad_VariablesDeEntorno(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("NUMBERING_SUBSTITUTE_MONTH", "true")
	t.Setenv("STORAGE_PATH", ":memory:")
	t.Setenv("AI_PROVIDER", "OpenAI")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.True(t, cfg.Numbering.SubstituteMonth)
	assert.True(t, cfg.Storage.InMemory())
	assert.Equal(t, "openai", cfg.AI.Provider)
}

func TestLoad_ProveedorIAInvalido(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("AI_PROVIDER", "otro")

	_, err := config.Load()
	assert.Error(t, err)
}
