package log

import (
	"context"
	"os"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type Fields logrus.Fields

// Logger expõe o subconjunto do logrus usado pelo serviço
type Logger interface {
	WithField(key string, value any) Logger
	WithFields(fields Fields) Logger
	WithError(err error) Logger
	WithContext(ctx context.Context) Logger

	Debug(args ...any)
	Debugf(format string, args ...any)
	Info(args ...any)
	Infof(format string, args ...any)
	Warn(args ...any)
	Warnf(format string, args ...any)
	Error(args ...any)
	Errorf(format string, args ...any)
	Fatal(args ...any)
	Fatalf(format string, args ...any)
}

type contextKey string

const CorrelationIDKey contextKey = "correlation_id"

const correlationIDField = "correlation_id"

// Em desenvolvimento só estes campos chegam ao console
var devFields = map[string]struct{}{
	correlationIDField: {},
	"method":           {},
	"path":             {},
	"status_code":      {},
	"duration_ms":      {},
	"error":            {},
	"customer_id":      {},
	"view_id":          {},
	"dataset":          {},
	"cache":            {},
	"job":              {},
}

type logger struct {
	*logrus.Entry
}

var L Logger = &logger{Entry: logrus.NewEntry(logrus.StandardLogger())}

// Setup aplica nível e formato ao logger padrão.
// Fora de desenvolvimento a saída é JSON.
func Setup(level string) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logrus.SetLevel(lvl)
	logrus.SetOutput(os.Stdout)

	if IsDevelopment() {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, PadLevelText: true})
	} else {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	L = &logger{Entry: logrus.NewEntry(logrus.StandardLogger())}

	if err != nil {
		L.Warnf("LOG_LEVEL %q desconhecido, usando info", level)
	}
}

func IsDevelopment() bool {
	switch os.Getenv("APP_ENV") {
	case "", "development", "dev":
		return true
	}
	return false
}

func keep(key string) bool {
	if !IsDevelopment() {
		return true
	}
	_, ok := devFields[key]
	return ok
}

func (l *logger) WithField(key string, value any) Logger {
	if !keep(key) {
		return l
	}
	return &logger{Entry: l.Entry.WithField(key, value)}
}

func (l *logger) WithFields(fields Fields) Logger {
	kept := make(logrus.Fields, len(fields))
	for k, v := range fields {
		if keep(k) {
			kept[k] = v
		}
	}
	if len(kept) == 0 {
		return l
	}
	return &logger{Entry: l.Entry.WithFields(kept)}
}

func (l *logger) WithError(err error) Logger {
	return &logger{Entry: l.Entry.WithError(err)}
}

func (l *logger) WithContext(ctx context.Context) Logger {
	if ctx == nil {
		return l
	}
	if id := GetCorrelationID(ctx); id != "" {
		return l.WithField(correlationIDField, id)
	}
	return l
}

// WithCorrelationID gera um id novo e o guarda no contexto
func WithCorrelationID(ctx context.Context) (context.Context, string) {
	id := uuid.New().String()
	return context.WithValue(ctx, CorrelationIDKey, id), id
}

func GetCorrelationID(ctx context.Context) string {
	id, _ := ctx.Value(CorrelationIDKey).(string)
	return id
}

func ForContext(ctx context.Context) Logger {
	return L.WithContext(ctx)
}
