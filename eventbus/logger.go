package eventbus

import (
	"github.com/ThreeDotsLabs/watermill"
	"github.com/go-kratos/kratos/v2/log"
)

// watermillLogger bridges Watermill's LoggerAdapter onto a Kratos logger so
// the bus logs through the same backend as the rest of the application.
// Fields accumulated via With are flattened into keyvals once, at With time.
type watermillLogger struct {
	helper  *log.Helper
	keyvals []interface{}
}

// NewWatermillLogger wraps a Kratos logger for use by the bus.
func NewWatermillLogger(logger log.Logger) watermill.LoggerAdapter {
	return &watermillLogger{helper: log.NewHelper(logger)}
}

func (l *watermillLogger) Error(msg string, err error, fields watermill.LogFields) {
	l.log(log.LevelError, msg, fields.Add(watermill.LogFields{"error": err}))
}

func (l *watermillLogger) Info(msg string, fields watermill.LogFields) {
	l.log(log.LevelInfo, msg, fields)
}

func (l *watermillLogger) Debug(msg string, fields watermill.LogFields) {
	l.log(log.LevelDebug, msg, fields)
}

// Trace maps to debug; Kratos has no trace level.
func (l *watermillLogger) Trace(msg string, fields watermill.LogFields) {
	l.log(log.LevelDebug, msg, fields)
}

func (l *watermillLogger) With(fields watermill.LogFields) watermill.LoggerAdapter {
	keyvals := make([]interface{}, 0, len(l.keyvals)+len(fields)*2)
	keyvals = append(keyvals, l.keyvals...)
	for k, v := range fields {
		keyvals = append(keyvals, k, v)
	}
	return &watermillLogger{helper: l.helper, keyvals: keyvals}
}

func (l *watermillLogger) log(level log.Level, msg string, fields watermill.LogFields) {
	keyvals := make([]interface{}, 0, 2+len(l.keyvals)+len(fields)*2)
	keyvals = append(keyvals, "msg", msg)
	keyvals = append(keyvals, l.keyvals...)
	for k, v := range fields {
		keyvals = append(keyvals, k, v)
	}
	l.helper.Log(level, keyvals...)
}
