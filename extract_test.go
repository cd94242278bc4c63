package sqlmask

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractCode(t *testing.T) {
	for _, tt := range []struct {
		name string
		msg  string
		want string
	}{
		{
			name: "sqlstate marker",
			msg:  "SQLSTATE[42S01]: Base table or view already exists",
			want: "42S01",
		},
		{
			name: "sqlstate marker lowercase",
			msg:  "sqlstate[hy000] general error",
			want: "HY000",
		},
		{
			name: "vendor code",
			msg:  "ERROR 1064: You have an error in your SQL syntax",
			want: "1064",
		},
		{
			name: "vendor code overrides sqlstate",
			msg:  "SQLSTATE[42000]: Syntax error or access violation: 1064 You have an error",
			want: "1064",
		},
		{
			name: "five digit numeral ignored",
			msg:  "error 12345 happened",
			want: "",
		},
		{
			name: "no code",
			msg:  "something went wrong",
			want: "",
		},
		{
			name: "empty message",
			msg:  "",
			want: "",
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractCode(tt.msg))
		})
	}
}

func TestExtractCode_Truncated(t *testing.T) {
	var m = New(WithMaxMessageLength(10))

	assert.Equal(t, "", m.ExtractCode("padding padding 1064"))
	assert.Equal(t, "1064", m.ExtractCode("1064 error"))
}
