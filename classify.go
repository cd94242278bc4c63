package sqlmask

import "strings"

type keywordRule struct {
	keywords []string

	typ      Type
	category Category
	severity Severity
}

func (r keywordRule) match(msg string) bool {
	for _, kw := range r.keywords {
		if strings.Contains(msg, kw) {
			return true
		}
	}

	return false
}

// keywordRules are evaluated in order, first match wins.
var keywordRules = []keywordRule{
	{
		keywords: []string{"already exists"},
		typ:      TypeResourceExists,
		category: CategorySchema,
		severity: SeverityLow,
	},
	{
		keywords: []string{"not found", "unknown table"},
		typ:      TypeResourceNotFound,
		category: CategorySchema,
		severity: SeverityHigh,
	},
	{
		keywords: []string{"duplicate"},
		typ:      TypeDuplicateData,
		category: CategoryData,
		severity: SeverityMedium,
	},
	{
		keywords: []string{"syntax error"},
		typ:      TypeQueryError,
		category: CategoryQuery,
		severity: SeverityHigh,
	},
	{
		keywords: []string{"connection"},
		typ:      TypeConnectionError,
		category: CategoryConnection,
		severity: SeverityCritical,
	},
}

// Identify classifies msg into an ErrorInfo. Keyword heuristics take
// precedence; when none of them match, a known code determines the
// classification. Unclassifiable messages get the generic defaults.
func (m *Masker) Identify(msg string) ErrorInfo {
	return m.IdentifyCode(m.ExtractCode(msg), msg)
}

// IdentifyCode classifies msg like Identify but takes the code as given
// instead of extracting it from the text. Callers holding a structured
// driver error use it so the classification follows the driver's code.
func (m *Masker) IdentifyCode(code, msg string) ErrorInfo {
	var (
		info   = defaultErrorInfo()
		folded = strings.ToLower(m.truncate(msg))
	)

	info.Code = code

	ci, known := lookupCode(code)

	if known {
		info.Description = ci.description
	}

	for _, r := range keywordRules {
		if r.match(folded) {
			info.Type = r.typ
			info.Category = r.category
			info.Severity = r.severity

			return info
		}
	}

	if known {
		info.Type = ci.typ
		info.Category = ci.category
		info.Severity = ci.severity
	}

	return info
}

// IsType reports whether msg classifies as the given type, compared
// case-insensitively.
func (m *Masker) IsType(t string, msg string) bool {
	return strings.EqualFold(string(m.Identify(msg).Type), t)
}

// HasCode reports whether the code extracted from msg matches any of the
// given codes, case-insensitively.
func (m *Masker) HasCode(msg string, codes ...string) bool {
	var code = m.ExtractCode(msg)

	if code == "" {
		return false
	}

	for _, c := range codes {
		if strings.EqualFold(code, c) {
			return true
		}
	}

	return false
}

var (
	resourceExistsCodes   = []string{"42S01", "1050"}
	resourceNotFoundCodes = []string{"42S02", "1146"}
	duplicateDataCodes    = []string{"23000", "23505", "1062"}
	queryErrorCodes       = []string{"42000", "1064"}
	connectionErrorCodes  = []string{"08001", "08004", "2002", "2003", "2006"}
	constraintCodes       = []string{"23000", "23505", "1452"}
)

func (m *Masker) IsResourceExists(msg string) bool {
	return m.IsType(string(TypeResourceExists), msg) ||
		m.HasCode(msg, resourceExistsCodes...)
}

func (m *Masker) IsResourceNotFound(msg string) bool {
	return m.IsType(string(TypeResourceNotFound), msg) ||
		m.HasCode(msg, resourceNotFoundCodes...)
}

func (m *Masker) IsDuplicateData(msg string) bool {
	return m.IsType(string(TypeDuplicateData), msg) ||
		m.HasCode(msg, duplicateDataCodes...)
}

func (m *Masker) IsQueryError(msg string) bool {
	return m.IsType(string(TypeQueryError), msg) ||
		m.HasCode(msg, queryErrorCodes...)
}

func (m *Masker) IsConnectionError(msg string) bool {
	return m.IsType(string(TypeConnectionError), msg) ||
		m.HasCode(msg, connectionErrorCodes...)
}

// IsConstraintViolation is defined purely by code membership, there is no
// keyword heuristic for it.
func (m *Masker) IsConstraintViolation(msg string) bool {
	return m.HasCode(msg, constraintCodes...)
}
