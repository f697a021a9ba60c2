package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/Egor213/RosoutDiag/pkg/logger"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLogger_Level(t *testing.T) {
	var buf bytes.Buffer
	logger.SetupLoggerWithOutput("debug", &buf)

	assert.Equal(t, log.DebugLevel, log.GetLevel())
}

func TestSetupLogger_FallbackToInfo(t *testing.T) {
	var buf bytes.Buffer
	logger.SetupLoggerWithOutput("loud", &buf)

	assert.Equal(t, log.InfoLevel, log.GetLevel())

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "info", line["level"])
	assert.Contains(t, line["file"], "logger.go:")
}
