package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetLevelEnablesUpTo(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "warn")
	logger.Warnln("careful")
	logger.Infoln("chatter")
	assert.Contains(t, buf.String(), "careful")
	assert.NotContains(t, buf.String(), "chatter")
}

func TestSetLevelUnknownFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "loud")
	logger.Infoln("visible")
	logger.Debugln("hidden")
	assert.Contains(t, buf.String(), "Unknown log level loud")
	assert.Contains(t, buf.String(), "visible")
	assert.NotContains(t, buf.String(), "hidden")
}
