package logging

import (
	"fmt"

	"github.com/go-kratos/kratos/v2/log"
)

// kratosLogger adapts a Kratos logger to the Logger facade.
// Trace maps to Kratos debug; Kratos has no trace level.
type kratosLogger struct {
	helper *log.Helper
}

// NewKratos wraps a Kratos logger in the Logger facade.
func NewKratos(logger log.Logger) Logger {
	return &kratosLogger{helper: log.NewHelper(logger)}
}

func (l *kratosLogger) Trace(template string, args ...any) {
	l.helper.Debugf(template, args...)
}

func (l *kratosLogger) Info(template string, args ...any) {
	l.helper.Infof(template, args...)
}

func (l *kratosLogger) Warn(template string, args ...any) {
	l.helper.Warnf(template, args...)
}

func (l *kratosLogger) Error(err error, template string, args ...any) {
	l.helper.Log(log.LevelError,
		"msg", fmt.Sprintf(template, args...),
		"error", err,
	)
}
