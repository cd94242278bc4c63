// Package safelog emits classified database errors through an
// upfluence/log logger, with the message masked for the requested level
// and the classification attached as log fields.
package safelog

import (
	"github.com/upfluence/log"
	"github.com/upfluence/log/record"

	"github.com/upfluence/sqlmask"
)

// Sink receives a fully masked log line. It exists so the emission
// backend can be swapped out in tests.
type Sink interface {
	Emit(record.Level, string, ...record.Field)
}

type logSink struct {
	logger log.Logger
}

func (s *logSink) Emit(lvl record.Level, msg string, fields ...record.Field) {
	var l = s.logger

	for _, f := range fields {
		l = l.WithField(f)
	}

	l.Log(lvl, msg)
}

type Logger struct {
	sink   Sink
	masker *sqlmask.Masker
}

type Option func(*Logger)

func WithMasker(m *sqlmask.Masker) Option {
	return func(l *Logger) { l.masker = m }
}

func New(s Sink, opts ...Option) *Logger {
	var l = Logger{sink: s, masker: sqlmask.New()}

	for _, opt := range opts {
		opt(&l)
	}

	return &l
}

func NewLogger(logger log.Logger, opts ...Option) *Logger {
	return New(&logSink{logger: logger}, opts...)
}

type stringField struct {
	key, value string
}

func (f *stringField) GetKey() string   { return f.key }
func (f *stringField) GetValue() string { return f.value }

func recordLevel(lvl sqlmask.Level) record.Level {
	switch lvl {
	case sqlmask.LevelInfo, "":
		return record.Info
	case sqlmask.LevelWarning:
		return record.Warning
	case sqlmask.LevelError:
		return record.Error
	default:
		return record.Debug
	}
}

// Report processes msg at lvl and emits the masked record. The raw
// message never reaches the sink.
func (l *Logger) Report(msg string, lvl sqlmask.Level, ctx map[string]interface{}) {
	var (
		rec = l.masker.Process(msg, lvl, ctx)

		fields = []record.Field{
			&stringField{key: "error_type", value: string(rec.ErrorType)},
		}
	)

	if rec.ErrorCode != "" {
		fields = append(
			fields,
			&stringField{key: "error_code", value: rec.ErrorCode},
		)
	}

	if rec.ErrorCategory != "" {
		fields = append(
			fields,
			&stringField{key: "error_category", value: string(rec.ErrorCategory)},
		)
	}

	if d := rec.Details; d != nil {
		fields = append(
			fields,
			&stringField{key: "category", value: string(d.Category)},
			&stringField{key: "severity", value: string(d.Severity)},
		)
	}

	l.sink.Emit(recordLevel(lvl), rec.Message, fields...)
}
