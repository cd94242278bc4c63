package sqlmask

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertTimestamp(t *testing.T, rec Record) {
	t.Helper()

	// Wall-clock value, only the shape is stable.
	_, err := time.Parse(time.RFC3339, rec.Timestamp)
	assert.NoError(t, err)
}

func TestProcess_Base(t *testing.T) {
	var rec = Process("SQLSTATE[23505] duplicate key", LevelInfo, nil)

	assert.Equal(t, LevelInfo, rec.Level)
	assert.Equal(t, TypeDuplicateData, rec.ErrorType)
	assert.Equal(t, "23505", rec.ErrorCode)
	assert.Equal(t, "Database operation failed: Duplicate entry", rec.Message)
	assert.Nil(t, rec.Details)
	assert.Empty(t, rec.ErrorCategory)
	assertTimestamp(t, rec)
}

func TestProcess_EmptyLevelMeansInfo(t *testing.T) {
	var rec = Process("connection refused", "", nil)

	assert.Equal(t, LevelInfo, rec.Level)
	assert.Nil(t, rec.Details)
}

func TestProcess_LevelPassthrough(t *testing.T) {
	var rec = Process("Value 'x' rejected", "trace", nil)

	assert.Equal(t, Level("trace"), rec.Level)
	assert.Equal(t, "Value [REDACTED] rejected", rec.Message)
	assert.Nil(t, rec.Details)
	assertTimestamp(t, rec)
}

func TestProcess_Debug(t *testing.T) {
	var (
		msg = "SQLSTATE[42S01]: Table `trx_payments` already exists"
		ctx = map[string]interface{}{"query_id": 7}

		rec = Process(msg, LevelDebug, ctx)
	)

	require.NotNil(t, rec.Details)
	assert.Equal(t, CategorySchema, rec.Details.Category)
	assert.Equal(t, SeverityLow, rec.Details.Severity)
	assert.Equal(t, Redact(msg), rec.Details.FullMaskedError)
	assert.NotContains(t, rec.Details.FullMaskedError, "trx_payments")
	assert.Equal(t, ctx, rec.Details.Context)
	assert.Empty(t, rec.ErrorCategory)
}

func TestProcess_DebugNilContext(t *testing.T) {
	var rec = Process("Value 'x' rejected", LevelDebug, nil)

	require.NotNil(t, rec.Details)
	assert.NotNil(t, rec.Details.Context)
	assert.Empty(t, rec.Details.Context)

	buf, err := json.Marshal(rec)
	require.NoError(t, err)

	var out map[string]interface{}

	require.NoError(t, json.Unmarshal(buf, &out))

	details, ok := out["details"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, map[string]interface{}{}, details["context"])
}

func TestProcess_Warning(t *testing.T) {
	var rec = Process("connection refused by host", LevelWarning, nil)

	require.NotNil(t, rec.Details)
	assert.Equal(t, CategoryConnection, rec.Details.Category)
	assert.Equal(t, SeverityCritical, rec.Details.Severity)
	assert.Empty(t, rec.Details.FullMaskedError)
	assert.Nil(t, rec.Details.Context)
}

func TestProcess_Error(t *testing.T) {
	var rec = Process("syntax error near 'select'", LevelError, nil)

	assert.Nil(t, rec.Details)
	assert.Equal(t, CategoryQuery, rec.ErrorCategory)
	assert.Equal(t, "Database error occurred - query_error (UNKNOWN)", rec.Message)
}

func TestProcess_JSONShape(t *testing.T) {
	var (
		rec = Process("SQLSTATE[23505] duplicate key", LevelDebug, map[string]interface{}{"op": "insert"})

		out map[string]interface{}
	)

	buf, err := json.Marshal(rec)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(buf, &out))

	assert.Equal(t, "debug", out["level"])
	assert.Equal(t, "duplicate_data", out["error_type"])
	assert.Contains(t, out, "timestamp")

	details, ok := out["details"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, details, "full_masked_error")
	assert.Contains(t, details, "context")
}
