package logger_test

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/fk219/Send-My-Invoice/pkg/logger"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, logger.ParseLevel("debug"))
	assert.Equal(t, zerolog.WarnLevel, logger.ParseLevel(" WARN "))
	assert.Equal(t, zerolog.InfoLevel, logger.ParseLevel(""))
	assert.Equal(t, zerolog.InfoLevel, logger.ParseLevel("ruido"))
}

func TestNew_ProduccionEscribeJSONConComponente(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(logger.Config{Env: "production", Level: "info", Output: &buf})

	l.Component("numbering").Info().Str("number", "INV-2024-0008").Msg("siguiente número")
	l.Debug().Msg("no se imprime")

	out := buf.String()
	assert.Contains(t, out, `"component":"numbering"`)
	assert.Contains(t, out, `"number":"INV-2024-0008"`)
	assert.NotContains(t, out, "no se imprime")
}
