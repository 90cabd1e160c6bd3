package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/rs/zerolog"
	gormlogger "gorm.io/gorm/logger"

	"github.com/lynxmind/task-portal/internal/config"
)

func TestNewWithWriter_ProdWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewWithWriter(config.EnvProd, &buf)
	require.NoError(t, err)

	log.Debug().Msg("hidden")
	log.Info().Str("path", "/tasks").Msg("request")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "request", entry["message"])
	assert.Equal(t, "/tasks", entry["path"])
	assert.Contains(t, entry, "timestamp")
}

func TestNewWithWriter_LeavesGlobalsAlone(t *testing.T) {
	prev := zerolog.TimestampFieldName
	t.Cleanup(func() { zerolog.TimestampFieldName = prev })

	zerolog.TimestampFieldName = "ts"
	_, err := NewWithWriter(config.EnvProd, &bytes.Buffer{})
	require.NoError(t, err)

	assert.Equal(t, "ts", zerolog.TimestampFieldName)
}

func TestNewWithWriter_UnknownEnv(t *testing.T) {
	_, err := NewWithWriter("staging", &bytes.Buffer{})
	assert.Error(t, err)
}

func TestParseGormLevel(t *testing.T) {
	assert.Equal(t, gormlogger.Silent, ParseGormLevel("silent"))
	assert.Equal(t, gormlogger.Error, ParseGormLevel("ERROR"))
	assert.Equal(t, gormlogger.Info, ParseGormLevel("info"))
	assert.Equal(t, gormlogger.Warn, ParseGormLevel(""))
}
