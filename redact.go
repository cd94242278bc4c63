package sqlmask

import "regexp"

// Rule rewrites every match of Pattern with Replacement. Replacement may
// reference capture groups with the regexp expansion syntax.
type Rule struct {
	Pattern     *regexp.Regexp
	Replacement string
}

// defaultRules run in order, each on the output of the previous one.
// Delimited tokens are scrubbed before the looser numeric and date
// patterns so that, e.g., a quoted date is folded into [REDACTED] rather
// than rewritten by the bare date rule. Replacement tokens never re-match
// any rule, which keeps the whole pass idempotent.
var defaultRules = []Rule{
	{regexp.MustCompile("`[^`]*`"), "[REDACTED]"},
	{regexp.MustCompile(`'[^']*'`), "[REDACTED]"},
	{regexp.MustCompile(`"[^"]*"`), "[REDACTED]"},
	{regexp.MustCompile(`\b\d{4}-\d{2}-\d{2}\b`), "[DATE]"},
	{regexp.MustCompile(`\b\d{2}:\d{2}(?::\d{2})?\b`), "[TIME]"},
	{regexp.MustCompile(`\b[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}\b`), "[UUID]"},
	{regexp.MustCompile(`\b\d{10,}\b`), "[NUMBER]"},
	{regexp.MustCompile(`(?i)\b(?:trx_\w+|\w*payout\w*|\w*vendor\w*)\b`), "[TABLE]"},
	{regexp.MustCompile(`\b20\d{6}\b`), "[DATE]"},
	{regexp.MustCompile(`(?i)\b(Database|Connection):\s*\S+`), "${1}: [REDACTED]"},
	{regexp.MustCompile(`[A-Za-z]:\\[^\s'"]+`), "[PATH]"},
	{regexp.MustCompile(`(?:/[\w.\-]+)+\.php\b`), "[PATH]"},
	{regexp.MustCompile(`:\d+\)`), ":[LINE])"},
}

// DefaultRules returns a copy of the built-in rule set, so callers can
// splice in their own rules before passing the result to WithRules. The
// table-name rule encodes naming conventions (trx_ prefix, payout, vendor)
// that deployments with different conventions will want to swap out.
func DefaultRules() []Rule {
	return append([]Rule(nil), defaultRules...)
}

// Redact scrubs sensitive substrings from msg. It always operates on the
// full message regardless of the masker's max length.
func (m *Masker) Redact(msg string) string {
	for _, r := range m.rules {
		msg = r.Pattern.ReplaceAllString(msg, r.Replacement)
	}

	return msg
}
