package log_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"renum/internal/log"
)

func TestDebugSuppressedByDefault(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)

	log.Debug("hidden %s", "detail")
	assert.Empty(t, buf.String())

	log.Info("visible")
	assert.Contains(t, buf.String(), "visible")
}

func TestSetDebug(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)

	log.SetDebug(true)
	defer log.SetDebug(false)

	log.Debug("now shown: %d", 42)
	assert.Contains(t, buf.String(), "now shown: 42")
}

func TestWithFields(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)

	log.WithFields(log.F("path", "/tmp/a.jpg"), log.F("ext", "jpg")).Info("classified")

	out := buf.String()
	assert.Contains(t, out, "classified")
	assert.Contains(t, out, "path=")
	assert.Contains(t, out, "ext=jpg")
}

func TestWarnAndError(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)

	log.Warn("careful: %s", "something")
	log.Error("broken: %s", "badly")

	out := buf.String()
	assert.Contains(t, out, "careful: something")
	assert.Contains(t, out, "broken: badly")
}
