package sqlmask

import "strings"

type codeInfo struct {
	description string
	typ         Type
	category    Category
	severity    Severity
}

// knownCodes maps SQLSTATE and vendor numeric codes to their
// classification. The table is read-only after init.
var knownCodes = map[string]codeInfo{
	"42S01": {"Table already exists", TypeResourceExists, CategorySchema, SeverityLow},
	"1050":  {"Table already exists", TypeResourceExists, CategorySchema, SeverityLow},

	"42S02": {"Table not found", TypeResourceNotFound, CategorySchema, SeverityHigh},
	"1146":  {"Table not found", TypeResourceNotFound, CategorySchema, SeverityHigh},

	"23000": {"Integrity constraint violation", TypeDuplicateData, CategoryData, SeverityMedium},
	"23505": {"Duplicate entry", TypeDuplicateData, CategoryData, SeverityMedium},
	"1062":  {"Duplicate entry", TypeDuplicateData, CategoryData, SeverityMedium},
	"1452":  {"Foreign key constraint violation", TypeDatabaseError, CategoryData, SeverityHigh},

	"42000": {"Query error", TypeQueryError, CategoryQuery, SeverityHigh},
	"1064":  {"Query error", TypeQueryError, CategoryQuery, SeverityHigh},

	"08001": {"Connection failure", TypeConnectionError, CategoryConnection, SeverityCritical},
	"08004": {"Connection rejected", TypeConnectionError, CategoryConnection, SeverityCritical},
	"2002":  {"Connection failed", TypeConnectionError, CategoryConnection, SeverityCritical},
	"2003":  {"Connection refused", TypeConnectionError, CategoryConnection, SeverityCritical},
	"2006":  {"Server has gone away", TypeConnectionError, CategoryConnection, SeverityCritical},

	"40001": {"Serialization failure", TypeDatabaseError, CategoryGeneral, SeverityMedium},
	"HY000": {"General database error", TypeDatabaseError, CategoryGeneral, SeverityMedium},
}

func lookupCode(code string) (codeInfo, bool) {
	if code == "" {
		return codeInfo{}, false
	}

	ci, ok := knownCodes[strings.ToUpper(code)]

	return ci, ok
}
