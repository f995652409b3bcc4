package xerrors

import (
	grpcStatus "google.golang.org/grpc/status"

	"github.com/nitoqq/clickhouse-driver/internal/stack"
)

type withStackTraceOptions struct {
	skipDepth int
}

type withStackTraceOption func(o *withStackTraceOptions)

// WithSkipDepth skips extra frames so helpers record their caller
func WithSkipDepth(skipDepth int) withStackTraceOption {
	return func(o *withStackTraceOptions) {
		o.skipDepth = skipDepth
	}
}

// WithStackTrace annotates err with the file:line it was returned from.
// An error already annotated at the same call site is returned as is,
// so a sticky result error re-reported from one place keeps a single record.
func WithStackTrace(err error, opts ...withStackTraceOption) error {
	if err == nil {
		return nil
	}
	options := withStackTraceOptions{}
	for _, opt := range opts {
		if opt != nil {
			opt(&options)
		}
	}
	record := stack.Record(options.skipDepth + 1)
	if location(err) == record {
		return err
	}
	if s, has := grpcStatus.FromError(err); has {
		return &stackTransportError{
			stackError: stackError{
				stackRecord: record,
				err:         err,
			},
			status: s,
		}
	}

	return &stackError{
		stackRecord: record,
		err:         err,
	}
}

func location(err error) string {
	switch e := err.(type) { //nolint:errorlint
	case *stackError:
		return e.stackRecord
	case *stackTransportError:
		return e.stackRecord
	default:
		return ""
	}
}

type stackError struct {
	stackRecord string
	err         error
}

func (e *stackError) Error() string {
	return e.err.Error() + " at `" + e.stackRecord + "`"
}

func (e *stackError) Unwrap() error {
	return e.err
}

type stackTransportError struct {
	stackError
	status *grpcStatus.Status
}

func (e *stackTransportError) GRPCStatus() *grpcStatus.Status {
	return e.status
}
