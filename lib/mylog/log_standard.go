package mylog

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

func init() {
	if os.Getenv("GOOGLE_CLOUD_PROJECT") == "" {
		New = newStandardLogger
	}
}

var standardLevels = map[Severity]logrus.Level{
	SeverityDebug: logrus.DebugLevel,
	SeverityInfo:  logrus.InfoLevel,
	SeverityWarn:  logrus.WarnLevel,
	SeverityError: logrus.ErrorLevel,
}

type standardLogger struct {
	componentName string
	log           *logrus.Logger
}

func newStandardLogger(componentName string) Logger {
	log := logrus.New()
	log.Out = os.Stderr
	log.Level = logrus.DebugLevel
	log.Formatter = &logrus.TextFormatter{
		FullTimestamp: true,
	}

	return standardLogger{
		componentName: componentName,
		log:           log,
	}
}

func (l standardLogger) Log(ctx context.Context, traceLabel string, severity Severity, format string, a ...any) {
	level, found := standardLevels[severity]
	if !found {
		level = logrus.InfoLevel
	}

	fields := logrus.Fields{"component": l.componentName}
	if traceLabel != "" {
		fields["aggregate"] = traceLabel
	}
	if trace := traceFromContext(ctx); trace != "" {
		fields["trace"] = trace
	}

	l.log.WithFields(fields).Log(level, fmt.Sprintf(format, a...))
}
