// Package sqlmask classifies raw SQL error messages and masks them for a
// given log level so they can be surfaced without leaking schema names,
// data values or filesystem paths.
package sqlmask

// DefaultMaxMessageLength bounds the portion of a message considered for
// code extraction and classification. Redaction always runs on the full
// message.
const DefaultMaxMessageLength = 8000

type Masker struct {
	maxMessageLength int
	rules            []Rule
}

type Option func(*Masker)

func WithMaxMessageLength(n int) Option {
	return func(m *Masker) { m.maxMessageLength = n }
}

// WithRules replaces the redaction rule set. Rules run in slice order and
// each rule operates on the output of the previous one.
func WithRules(rs []Rule) Option {
	return func(m *Masker) { m.rules = rs }
}

func New(opts ...Option) *Masker {
	var m = Masker{
		maxMessageLength: DefaultMaxMessageLength,
		rules:            DefaultRules(),
	}

	for _, opt := range opts {
		opt(&m)
	}

	return &m
}

func (m *Masker) truncate(msg string) string {
	if m.maxMessageLength > 0 && len(msg) > m.maxMessageLength {
		return msg[:m.maxMessageLength]
	}

	return msg
}

var defaultMasker = New()

func ExtractCode(msg string) string { return defaultMasker.ExtractCode(msg) }

func Identify(msg string) ErrorInfo { return defaultMasker.Identify(msg) }

func IdentifyCode(code, msg string) ErrorInfo {
	return defaultMasker.IdentifyCode(code, msg)
}

func IsType(t string, msg string) bool { return defaultMasker.IsType(t, msg) }

func HasCode(msg string, codes ...string) bool {
	return defaultMasker.HasCode(msg, codes...)
}

func Redact(msg string) string { return defaultMasker.Redact(msg) }

func Mask(msg string, lvl Level) string { return defaultMasker.Mask(msg, lvl) }

func Process(msg string, lvl Level, ctx map[string]interface{}) Record {
	return defaultMasker.Process(msg, lvl, ctx)
}

func UserMessage(msg string) string { return defaultMasker.UserMessage(msg) }

func IsResourceExists(msg string) bool   { return defaultMasker.IsResourceExists(msg) }
func IsResourceNotFound(msg string) bool { return defaultMasker.IsResourceNotFound(msg) }
func IsDuplicateData(msg string) bool    { return defaultMasker.IsDuplicateData(msg) }
func IsQueryError(msg string) bool       { return defaultMasker.IsQueryError(msg) }
func IsConnectionError(msg string) bool  { return defaultMasker.IsConnectionError(msg) }

func IsConstraintViolation(msg string) bool {
	return defaultMasker.IsConstraintViolation(msg)
}
