package xerrors

import (
	"errors"

	grpcCodes "google.golang.org/grpc/codes"
	grpcStatus "google.golang.org/grpc/status"
)

type grpcStatusCarrier interface {
	GRPCStatus() *grpcStatus.Status
}

// IsTransportError reports whether err carries a gRPC status.
// If codes are given the status code must be one of them.
func IsTransportError(err error, codes ...grpcCodes.Code) bool {
	if err == nil {
		return false
	}
	var carrier grpcStatusCarrier
	if !errors.As(err, &carrier) {
		return false
	}
	if len(codes) == 0 {
		return true
	}
	code := carrier.GRPCStatus().Code()
	for _, c := range codes {
		if c == code {
			return true
		}
	}

	return false
}
