package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitWithOutput_JSON(t *testing.T) {
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("LOG_LEVEL", "debug")

	var buf bytes.Buffer
	InitWithOutput(&buf)

	Component("turn_resolver").WithField("round", 3).Debug("round finished")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "turn_resolver", entry["component"])
	assert.Equal(t, "round finished", entry["msg"])
	assert.Equal(t, float64(3), entry["round"])
}

func TestInitWithOutput_BadLevelFallsBackToInfo(t *testing.T) {
	t.Setenv("LOG_LEVEL", "chatty")

	var buf bytes.Buffer
	InitWithOutput(&buf)

	assert.Equal(t, logrus.InfoLevel, Log.GetLevel())
}
