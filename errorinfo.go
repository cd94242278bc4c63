package sqlmask

type Type string

const (
	TypeResourceExists   Type = "resource_exists"
	TypeResourceNotFound Type = "resource_not_found"
	TypeDuplicateData    Type = "duplicate_data"
	TypeQueryError       Type = "query_error"
	TypeConnectionError  Type = "connection_error"
	TypeDatabaseError    Type = "database_error"
)

type Category string

const (
	CategorySchema     Category = "schema"
	CategoryData       Category = "data"
	CategoryQuery      Category = "query"
	CategoryConnection Category = "connection"
	CategoryGeneral    Category = "general"
)

type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

const defaultDescription = "Database operation error"

// ErrorInfo is the normalized classification of a raw database error
// message. It is a plain value, built fresh on every call.
type ErrorInfo struct {
	Type        Type
	Code        string
	Description string
	Category    Category
	Severity    Severity
}

func defaultErrorInfo() ErrorInfo {
	return ErrorInfo{
		Type:        TypeDatabaseError,
		Description: defaultDescription,
		Category:    CategoryGeneral,
		Severity:    SeverityMedium,
	}
}
