package sqlmask

import "time"

// Record is the structured output of Process. Fields beyond the base set
// depend on the level: debug and warning carry Details, error carries
// ErrorCategory.
type Record struct {
	Level     Level  `json:"level"`
	Message   string `json:"message"`
	ErrorType Type   `json:"error_type"`
	ErrorCode string `json:"error_code,omitempty"`
	Timestamp string `json:"timestamp"`

	ErrorCategory Category `json:"error_category,omitempty"`
	Details       *Details `json:"details,omitempty"`
}

type Details struct {
	Category        Category               `json:"category"`
	Severity        Severity               `json:"severity"`
	FullMaskedError string                 `json:"full_masked_error,omitempty"`
	Context         map[string]interface{} `json:"context"`
}

// Process masks msg for lvl and wraps the result in a Record. The level is
// carried verbatim, even when it is not one of the Level constants; an
// empty level means info. The timestamp is the wall-clock time of the
// call, formatted as RFC3339.
func (m *Masker) Process(msg string, lvl Level, ctx map[string]interface{}) Record {
	if lvl == "" {
		lvl = LevelInfo
	}

	var (
		info = m.Identify(msg)

		rec = Record{
			Level:     lvl,
			Message:   m.Mask(msg, lvl),
			ErrorType: info.Type,
			ErrorCode: info.Code,
			Timestamp: time.Now().Format(time.RFC3339),
		}
	)

	switch lvl {
	case LevelDebug:
		if ctx == nil {
			ctx = map[string]interface{}{}
		}

		rec.Details = &Details{
			Category:        info.Category,
			Severity:        info.Severity,
			FullMaskedError: m.Redact(msg),
			Context:         ctx,
		}
	case LevelWarning:
		rec.Details = &Details{
			Category: info.Category,
			Severity: info.Severity,
		}
	case LevelError:
		rec.ErrorCategory = info.Category
	}

	return rec
}
