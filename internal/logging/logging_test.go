package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, zerolog.InfoLevel, level)

	level, err = ParseLevel("DEBUG")
	require.NoError(t, err)
	assert.Equal(t, zerolog.DebugLevel, level)

	_, err = ParseLevel("loud")
	assert.Error(t, err)
}

func TestComponentTagsOutput(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf, zerolog.DebugLevel)

	log := Component("editor")
	log.Debug().Str("role", "primary.base").Msg("edit committed")

	out := buf.String()
	assert.Contains(t, out, `"component":"editor"`)
	assert.Contains(t, out, `"role":"primary.base"`)
	assert.Contains(t, out, "edit committed")
}

func TestInitWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "swatch.log")

	cleanup, err := Init(Config{Level: "info", File: path})
	require.NoError(t, err)

	log := Component("test")
	log.Info().Msg("hello")
	log.Debug().Msg("filtered")
	require.NoError(t, cleanup())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "hello"))
	assert.False(t, strings.Contains(string(data), "filtered"))
}

func TestInitRejectsBadLevel(t *testing.T) {
	_, err := Init(Config{Level: "nope"})
	assert.Error(t, err)
}
