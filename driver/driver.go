// Package driver lifts error codes out of structured driver errors so
// callers wrapping database/sql calls can feed sqlmask without going
// through text extraction first.
package driver

import (
	"strconv"
	"strings"

	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
	"github.com/upfluence/errors"

	"github.com/upfluence/sqlmask"
)

// Message returns the error text, "" for nil.
func Message(err error) string {
	if err == nil {
		return ""
	}

	return err.Error()
}

func structuredCode(err error) string {
	var pqErr *pq.Error

	if errors.As(err, &pqErr) {
		return strings.ToUpper(string(pqErr.Code))
	}

	var sqlErr sqlite3.Error

	if errors.As(err, &sqlErr) {
		if sqlErr.ExtendedCode != 0 {
			return strconv.Itoa(int(sqlErr.ExtendedCode))
		}

		if sqlErr.Code != 0 {
			return strconv.Itoa(int(sqlErr.Code))
		}
	}

	return ""
}

// Code returns the error code carried by err. Postgres errors yield the
// SQLSTATE, sqlite3 errors the numeric extended code; anything else falls
// back to extracting a code from the error text.
func Code(err error) string {
	if err == nil {
		return ""
	}

	if code := structuredCode(err); code != "" {
		return code
	}

	return sqlmask.ExtractCode(err.Error())
}

// Identify classifies err. A structured driver code wins over anything
// extracted from the error text, and the classification follows it.
func Identify(err error) sqlmask.ErrorInfo {
	if err == nil {
		return sqlmask.Identify("")
	}

	if code := structuredCode(err); code != "" {
		return sqlmask.IdentifyCode(code, err.Error())
	}

	return sqlmask.Identify(err.Error())
}
