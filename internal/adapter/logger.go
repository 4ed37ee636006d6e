package adapter

import (
	"fmt"
	"strings"

	"github.com/jasvilladarez/ello-go/internal/logger"
)

// restyLogger routes resty's debug and warning output into zerolog.
type restyLogger struct {
	log *logger.Logger
}

func newRestyLogger(log *logger.Logger) *restyLogger {
	return &restyLogger{log: log}
}

func (l *restyLogger) Errorf(format string, v ...any) {
	l.log.Error().Msg(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (l *restyLogger) Warnf(format string, v ...any) {
	l.log.Warn().Msg(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (l *restyLogger) Debugf(format string, v ...any) {
	l.log.Debug().Msg(strings.TrimSpace(fmt.Sprintf(format, v...)))
}
