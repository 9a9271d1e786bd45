package logging_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"strhelpers/internal/config"
	"strhelpers/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(config.LoggingConfig{Level: "info", Format: "json"}, &buf)

	logger.Info("started", "port", 8080)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "started", entry["msg"])
	assert.Equal(t, "strhelpers", entry["service"])
	assert.Equal(t, float64(8080), entry["port"])
}

func TestNew_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(config.LoggingConfig{Level: "info", Format: "text"}, &buf)

	logger.Info("started")

	assert.Contains(t, buf.String(), "msg=started")
	assert.Contains(t, buf.String(), "service=strhelpers")
}

func TestNew_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(config.LoggingConfig{Level: "warn", Format: "text"}, &buf)

	logger.Info("hidden")
	assert.Empty(t, buf.String())

	logger.Warn("shown")
	assert.Contains(t, buf.String(), "shown")
}
