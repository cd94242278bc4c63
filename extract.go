package sqlmask

import (
	"regexp"
	"strings"
)

var (
	sqlstateMarkerRegexp = regexp.MustCompile(`(?i)sqlstate\[([0-9a-z]+)\]`)
	vendorCodeRegexp     = regexp.MustCompile(`\b(\d{4})\b`)
)

// ExtractCode returns the error code found in msg, or "" when none is
// present. A SQLSTATE marker is matched first, but a standalone 4-digit
// vendor code found anywhere in the message overwrites it: when both are
// present the vendor code wins. Callers depend on this last-match-wins
// precedence.
func (m *Masker) ExtractCode(msg string) string {
	if msg == "" {
		return ""
	}

	msg = m.truncate(msg)

	var code string

	if match := sqlstateMarkerRegexp.FindStringSubmatch(msg); match != nil {
		code = strings.ToUpper(match[1])
	}

	if match := vendorCodeRegexp.FindStringSubmatch(msg); match != nil {
		code = match[1]
	}

	return code
}
