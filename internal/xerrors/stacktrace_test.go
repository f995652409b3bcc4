package xerrors

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
	grpcCodes "google.golang.org/grpc/codes"
	grpcStatus "google.golang.org/grpc/status"
)

func TestStackTraceError(t *testing.T) {
	for _, test := range []struct {
		error error
		text  string
	}{
		{
			error: WithStackTrace(fmt.Errorf("fmt.Errorf")),
			//nolint:lll
			text: "fmt.Errorf at `github.com/nitoqq/clickhouse-driver/internal/xerrors.TestStackTraceError(stacktrace_test.go:20)`",
		},
		{
			error: WithStackTrace(fmt.Errorf("fmt.Errorf %s", "Printf")),
			//nolint:lll
			text: "fmt.Errorf Printf at `github.com/nitoqq/clickhouse-driver/internal/xerrors.TestStackTraceError(stacktrace_test.go:25)`",
		},
		{
			error: WithStackTrace(
				WithStackTrace(errors.New("errors.New")),
			),
			//nolint:lll
			text: "errors.New at `github.com/nitoqq/clickhouse-driver/internal/xerrors.TestStackTraceError(stacktrace_test.go:31)` at `github.com/nitoqq/clickhouse-driver/internal/xerrors.TestStackTraceError(stacktrace_test.go:30)`",
		},
	} {
		t.Run(test.text, func(t *testing.T) {
			require.Equal(t, test.text, test.error.Error())
		})
	}
}

func TestStackTraceKeepsGRPCStatus(t *testing.T) {
	err := WithStackTrace(WithStackTrace(grpcStatus.Error(grpcCodes.Unavailable, "connection reset")))

	s, ok := grpcStatus.FromError(err)
	require.True(t, ok)
	require.Equal(t, grpcCodes.Unavailable, s.Code())
	require.True(t, IsTransportError(err))
	require.True(t, IsTransportError(err, grpcCodes.Canceled, grpcCodes.Unavailable))
	require.False(t, IsTransportError(err, grpcCodes.Canceled))
}

func TestIsTransportError(t *testing.T) {
	for _, tt := range []struct {
		name  string
		err   error
		codes []grpcCodes.Code
		match bool
	}{
		{
			name:  "Nil",
			err:   nil,
			match: false,
		},
		{
			name:  "PlainError",
			err:   errors.New("test"),
			match: false,
		},
		{
			name:  "Status",
			err:   grpcStatus.Error(grpcCodes.Canceled, ""),
			match: true,
		},
		{
			name:  "WrappedStatus",
			err:   fmt.Errorf("wrapped: %w", grpcStatus.Error(grpcCodes.Canceled, "")),
			codes: []grpcCodes.Code{grpcCodes.Canceled},
			match: true,
		},
		{
			name: "Joined",
			err: Join(
				errors.New("test"),
				grpcStatus.Error(grpcCodes.Aborted, ""),
			),
			codes: []grpcCodes.Code{grpcCodes.Aborted},
			match: true,
		},
		{
			name:  "OtherCode",
			err:   grpcStatus.Error(grpcCodes.Canceled, ""),
			codes: []grpcCodes.Code{grpcCodes.Aborted},
			match: false,
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.match, IsTransportError(tt.err, tt.codes...))
		})
	}
}

func TestJoin(t *testing.T) {
	first := errors.New("first")
	second := errors.New("second")
	err := Join(first, second)

	require.Equal(t, `["first","second"]`, err.Error())
	require.True(t, Is(err, first))
	require.True(t, Is(err, second))
	require.False(t, Is(err, errors.New("first")))

	require.NoError(t, Join(nil, nil))
	require.Equal(t, first, Join(nil, first))
}

func TestHideEOF(t *testing.T) {
	require.NoError(t, HideEOF(nil))
	require.NoError(t, HideEOF(WithStackTrace(io.EOF)))
	require.Error(t, HideEOF(errors.New("test")))
}

func TestStackTraceSameCallSite(t *testing.T) {
	t.Run("Plain", func(t *testing.T) {
		err := errors.New("broken pipe")
		for i := 0; i < 3; i++ {
			err = WithStackTrace(err)
		}
		require.Equal(t, "broken pipe at `"+location(err)+"`", err.Error())
		require.Contains(t, location(err), "stacktrace_test.go:128)")
	})
	t.Run("Transport", func(t *testing.T) {
		err := grpcStatus.Error(grpcCodes.Unavailable, "connection reset")
		for i := 0; i < 3; i++ {
			err = WithStackTrace(err)
		}
		require.Equal(t, "rpc error: code = Unavailable desc = connection reset at `"+location(err)+"`", err.Error())
		require.True(t, IsTransportError(err, grpcCodes.Unavailable))
	})
	t.Run("DifferentCallSites", func(t *testing.T) {
		err := WithStackTrace(errors.New("broken pipe"))
		err = WithStackTrace(err)
		require.NotEqual(t, "broken pipe at `"+location(err)+"`", err.Error())
	})
}
