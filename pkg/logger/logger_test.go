package logger

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStampsServiceField(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Env: "production", Level: "info", Service: "stampout-pos", Writer: &buf})

	l.Info().Str("evento", "arranque").Msg("listo")

	out := buf.String()
	require.NotEmpty(t, out)
	assert.Contains(t, out, `"service":"stampout-pos"`)
	assert.Contains(t, out, `"evento":"arranque"`)
}

func TestNewRespectsConfiguredLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Env: "production", Level: "warn", Writer: &buf})

	l.Info().Msg("descartado")
	assert.Empty(t, buf.String())

	l.Warn().Msg("visible")
	assert.Contains(t, buf.String(), "visible")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, zerolog.ErrorLevel, ParseLevel("error"))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel(""), "nivel desconocido cae en info")
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("verbose"))
}
