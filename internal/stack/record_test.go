package stack

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type testStruct struct {
	opts []recordOption
}

func (s testStruct) TestFunc() string {
	return Record(0, s.opts...)
}

func TestRecord(t *testing.T) {
	for _, tt := range []struct {
		name   string
		act    string
		prefix string
		suffix string
	}{
		{
			name:   "Full",
			act:    testStruct{}.TestFunc(),
			prefix: "github.com/nitoqq/clickhouse-driver/internal/stack.testStruct.TestFunc(",
			suffix: "record_test.go:15)",
		},
		{
			name:   "WithoutPackagePath",
			act:    testStruct{opts: []recordOption{PackagePath(false)}}.TestFunc(),
			prefix: "stack.testStruct.TestFunc(",
			suffix: "record_test.go:15)",
		},
		{
			name:   "FileOnly",
			act:    testStruct{opts: []recordOption{FunctionName(false)}}.TestFunc(),
			prefix: "record_test.go:",
			suffix: "15",
		},
		{
			name:   "FunctionOnly",
			act:    testStruct{opts: []recordOption{FileName(false)}}.TestFunc(),
			prefix: "github.com/nitoqq/clickhouse-driver/internal/stack.testStruct.TestFunc",
			suffix: "TestFunc",
		},
		{
			name:   "WithoutLine",
			act:    testStruct{opts: []recordOption{PackagePath(false), Line(false)}}.TestFunc(),
			prefix: "stack.testStruct.TestFunc(",
			suffix: "(record_test.go)",
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			require.True(t, strings.HasPrefix(tt.act, tt.prefix), tt.act)
			require.True(t, strings.HasSuffix(tt.act, tt.suffix), tt.act)
		})
	}
}
