package logging

import (
	"bytes"
	"errors"
	"testing"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/stretchr/testify/assert"
)

func newCaptured() (Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewKratos(log.NewStdLogger(&buf)), &buf
}

func TestKratosInfo(t *testing.T) {
	logger, buf := newCaptured()

	logger.Info("created %s with %d events", "order-42", 2)

	assert.Contains(t, buf.String(), "created order-42 with 2 events")
	assert.Contains(t, buf.String(), "INFO")
}

func TestKratosTraceMapsToDebug(t *testing.T) {
	logger, buf := newCaptured()

	logger.Trace("polling %s", "outbox")

	assert.Contains(t, buf.String(), "polling outbox")
	assert.Contains(t, buf.String(), "DEBUG")
}

func TestKratosWarn(t *testing.T) {
	logger, buf := newCaptured()

	logger.Warn("retrying %d", 3)

	assert.Contains(t, buf.String(), "retrying 3")
	assert.Contains(t, buf.String(), "WARN")
}

func TestKratosErrorCarriesCause(t *testing.T) {
	logger, buf := newCaptured()

	logger.Error(errors.New("broken pipe"), "publish to %s failed", "orders")

	out := buf.String()
	assert.Contains(t, out, "publish to orders failed")
	assert.Contains(t, out, "broken pipe")
	assert.Contains(t, out, "ERROR")
}

func TestNopDiscardsEverything(t *testing.T) {
	logger := Nop()

	// Must not panic, even with a nil error.
	logger.Trace("t")
	logger.Info("i")
	logger.Warn("w")
	logger.Error(nil, "e")
}
