// Package log encapsula o logrus com campos de correlação por requisição.
package log

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Fields é um alias para logrus.Fields
type Fields logrus.Fields

// Logger é uma interface que define os métodos de log
type Logger interface {
	WithField(key string, value interface{}) Logger
	WithFields(fields Fields) Logger
	WithError(err error) Logger
	WithContext(ctx context.Context) Logger

	Debug(args ...interface{})
	Debugf(format string, args ...interface{})
	Info(args ...interface{})
	Infof(format string, args ...interface{})
	Warn(args ...interface{})
	Warnf(format string, args ...interface{})
	Error(args ...interface{})
	Errorf(format string, args ...interface{})
	Fatal(args ...interface{})
}

// contextKey para armazenar o ID de correlação no contexto
type contextKey string

// CorrelationIDKey é a chave para armazenar o ID de correlação no contexto
const CorrelationIDKey contextKey = "correlation_id"
const correlationIDField = "correlation_id"

const (
	FormatText = "text"
	FormatJSON = "json"
)

// Options configura o logger global
type Options struct {
	Level  string
	Format string // text ou json
	Env    string // development, dev ou vazio ativam o modo compacto
	Output io.Writer
}

// compactFields são os campos mantidos no modo compacto (desenvolvimento).
// Campos com prefixo cache_ também passam.
var compactFields = map[string]bool{
	correlationIDField: true,
	"method":           true,
	"path":             true,
	"status_code":      true,
	"duration_ms":      true,
	"error":            true,
	"file_path":        true,
	"records":          true,
	"generation":       true,
}

// logger implementa a interface Logger e encapsula logrus
type logger struct {
	entry   *logrus.Entry
	compact bool
}

// L é uma instância global de Logger para uso direto
var L Logger = newLogger(logrus.StandardLogger(), isDevelopment(os.Getenv("APP_ENV")))

func newLogger(base *logrus.Logger, compact bool) *logger {
	return &logger{entry: logrus.NewEntry(base), compact: compact}
}

func isDevelopment(env string) bool {
	return env == "" || env == "development" || env == "dev"
}

// Configure define formato, nível e saída do logger global.
// Níveis inválidos caem para info e formatos desconhecidos para texto.
func Configure(opts Options) {
	base := logrus.StandardLogger()

	if strings.EqualFold(opts.Format, FormatJSON) {
		base.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339})
	} else {
		base.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.RFC3339,
		})
	}

	level, err := logrus.ParseLevel(opts.Level)
	if err != nil {
		base.Warnf("Nível de log inválido: %s, usando 'info'", opts.Level)
		level = logrus.InfoLevel
	}
	base.SetLevel(level)

	if opts.Output != nil {
		base.SetOutput(opts.Output)
	}

	L = newLogger(base, isDevelopment(opts.Env))
}

// SetupTestLogger configura um logger silencioso para testes
func SetupTestLogger() {
	logrus.SetOutput(io.Discard)
	logrus.SetLevel(logrus.DebugLevel)
	logrus.SetReportCaller(false)

	L = newLogger(logrus.StandardLogger(), false)
}

// WithField adiciona um único campo ao Logger
func (l *logger) WithField(key string, value interface{}) Logger {
	if l.compact && !compactFields[key] && !strings.HasPrefix(key, "cache_") {
		return l
	}
	return &logger{entry: l.entry.WithField(key, value), compact: l.compact}
}

// WithFields adiciona múltiplos campos ao Logger
func (l *logger) WithFields(fields Fields) Logger {
	if !l.compact {
		return &logger{entry: l.entry.WithFields(logrus.Fields(fields))}
	}

	relevant := make(logrus.Fields)
	for k, v := range fields {
		if compactFields[k] || strings.HasPrefix(k, "cache_") {
			relevant[k] = v
		}
	}
	if len(relevant) == 0 {
		return l
	}
	return &logger{entry: l.entry.WithFields(relevant), compact: true}
}

// WithError adiciona um erro ao Logger
func (l *logger) WithError(err error) Logger {
	return &logger{entry: l.entry.WithError(err), compact: l.compact}
}

// WithContext extrai informações do contexto para o Logger
func (l *logger) WithContext(ctx context.Context) Logger {
	if ctx == nil {
		return l
	}

	if correlationID := GetCorrelationID(ctx); correlationID != "" {
		return l.WithField(correlationIDField, correlationID)
	}

	return l
}

func (l *logger) Debug(args ...interface{}) {
	l.entry.Debug(args...)
}

func (l *logger) Debugf(format string, args ...interface{}) {
	l.entry.Debugf(format, args...)
}

func (l *logger) Info(args ...interface{}) {
	l.entry.Info(args...)
}

func (l *logger) Infof(format string, args ...interface{}) {
	l.entry.Infof(format, args...)
}

func (l *logger) Warn(args ...interface{}) {
	l.entry.Warn(args...)
}

func (l *logger) Warnf(format string, args ...interface{}) {
	l.entry.Warnf(format, args...)
}

func (l *logger) Error(args ...interface{}) {
	l.entry.Error(args...)
}

func (l *logger) Errorf(format string, args ...interface{}) {
	l.entry.Errorf(format, args...)
}

func (l *logger) Fatal(args ...interface{}) {
	l.entry.Fatal(args...)
}

// WithCorrelationID adiciona um ID de correlação ao contexto
func WithCorrelationID(ctx context.Context) (context.Context, string) {
	correlationID := uuid.New().String()
	return context.WithValue(ctx, CorrelationIDKey, correlationID), correlationID
}

// GetCorrelationID obtém o ID de correlação do contexto
func GetCorrelationID(ctx context.Context) string {
	if correlationID, ok := ctx.Value(CorrelationIDKey).(string); ok {
		return correlationID
	}
	return ""
}

// ForContext cria um logger com o ID de correlação do contexto
func ForContext(ctx context.Context) Logger {
	return L.WithContext(ctx)
}
