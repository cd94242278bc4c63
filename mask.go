package sqlmask

import (
	"fmt"
	"regexp"
)

// Level selects how much of a classified message Mask and Process reveal.
type Level string

const (
	LevelDebug   Level = "debug"
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

var warningLineRegexp = regexp.MustCompile(`SQLSTATE\[\w+\]:[^\n]*`)

// Mask returns a display string for msg appropriate to lvl:
//
//   - info (and empty): a generic sentence with the classified
//     description, never any of the original text
//   - warning: the redacted "SQLSTATE[...]: ..." line when one is present,
//     a generic warning sentence otherwise
//   - error: the normalized type and code only
//   - debug and any unrecognized level: the fully redacted message
func (m *Masker) Mask(msg string, lvl Level) string {
	switch lvl {
	case LevelInfo, "":
		return "Database operation failed: " + m.Identify(msg).Description
	case LevelWarning:
		if line := warningLineRegexp.FindString(m.Redact(msg)); line != "" {
			return line
		}

		return "Database warning: " + m.Identify(msg).Description
	case LevelError:
		var (
			info = m.Identify(msg)
			code = info.Code
		)

		if code == "" {
			code = "UNKNOWN"
		}

		return fmt.Sprintf("Database error occurred - %s (%s)", info.Type, code)
	default:
		return m.Redact(msg)
	}
}

var userMessages = map[Type]string{
	TypeResourceExists:   "The resource you are trying to create already exists.",
	TypeResourceNotFound: "The requested resource could not be found.",
	TypeDuplicateData:    "This record already exists in the system.",
	TypeQueryError:       "There was a problem processing your request.",
	TypeConnectionError:  "The service is temporarily unavailable. Please try again later.",
	TypeDatabaseError:    "A database error occurred. Please try again later.",
}

// UserMessage returns a canned end-user sentence for the classified type.
func (m *Masker) UserMessage(msg string) string {
	if s, ok := userMessages[m.Identify(msg).Type]; ok {
		return s
	}

	return userMessages[TypeDatabaseError]
}
