package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/nomina-cli/pkg/logger"
)

func TestNew_JSONFueraDeDevelopment(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "info", Out: &buf})

	log.Info().Str("department", "RRHH").Msg("empleado registrado")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "RRHH", entry["department"])
	assert.Equal(t, "empleado registrado", entry["message"])
}

func TestNew_FiltraPorNivel(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "warn", Out: &buf})

	log.Debug().Msg("no debe salir")
	log.Info().Msg("tampoco")
	assert.Zero(t, buf.Len())

	log.Warn().Msg("sí")
	assert.Contains(t, buf.String(), "sí")
}

func TestNew_Disabled(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "disabled", Out: &buf})
	log.Error().Msg("silencio")
	assert.Zero(t, buf.Len())
}

func TestNew_ConsolaEnDevelopment(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "development", Level: "info", Out: &buf})
	log.Info().Msg("iniciando")
	assert.Contains(t, buf.String(), "iniciando")
	assert.False(t, json.Valid(bytes.TrimSpace(buf.Bytes())), "en development la salida no es JSON")
}

func TestChild_ConservaCampos(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "info", Out: &buf})
	child := logger.Child(log.With().Str("app", "nomina-cli").Logger())
	child.Info().Msg("hola")
	assert.Contains(t, buf.String(), `"app":"nomina-cli"`)
}
