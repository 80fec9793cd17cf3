package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/nomina-cli/pkg/config"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("APP_NAME", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("REPORT_PDF_PATH", "")
	t.Setenv("REPORT_CURRENCY", "")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "nomina-cli", cfg.App.Name)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Empty(t, cfg.Report.PDFPath)
	assert.Empty(t, cfg.Report.Currency)
}

func TestLoad_EnvTienePrioridad(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("APP_NAME", "nomina-test")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("REPORT_PDF_PATH", "/tmp/nomina.pdf")
	t.Setenv("REPORT_CURRENCY", "COP")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "production", cfg.App.Env)
	assert.Equal(t, "nomina-test", cfg.App.Name)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/tmp/nomina.pdf", cfg.Report.PDFPath)
	assert.Equal(t, "COP", cfg.Report.Currency)
}

func TestLoad_NivelInvalido(t *testing.T) {
	t.Setenv("LOG_LEVEL", "verbose")
	_, err := config.Load()
	assert.Error(t, err)
}
