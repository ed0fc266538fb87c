package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNew_Level(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, New("debug", &bytes.Buffer{}).GetLevel())
	assert.Equal(t, zerolog.InfoLevel, New("nonsense", &bytes.Buffer{}).GetLevel())
	assert.Equal(t, zerolog.InfoLevel, New("", &bytes.Buffer{}).GetLevel())
}

func TestComponent(t *testing.T) {
	var buf bytes.Buffer
	logger := Component(New("info", &buf), "writer")
	logger.Info().Str("file", "update_query_part_1.sql").Msg("wrote statement")
	logger.Debug().Msg("hidden")

	out := buf.String()
	assert.Contains(t, out, "wrote statement")
	assert.Contains(t, out, "component")
	assert.Contains(t, out, "update_query_part_1.sql")
	assert.NotContains(t, out, "hidden")
}
