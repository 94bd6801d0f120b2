package booking

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/light-bringer/karting-service/internal/app/karting/domain"
)

// mapDomainErrorToGRPC converts domain errors to gRPC status codes.
func mapDomainErrorToGRPC(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, domain.ErrClientNotFound),
		errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrKartNotFound):
		return status.Error(codes.NotFound, err.Error())

	case errors.Is(err, domain.ErrInvalidFeeOption),
		errors.Is(err, domain.ErrInvalidNumberOfPersons),
		errors.Is(err, domain.ErrMissingStartTime),
		errors.Is(err, domain.ErrInvalidArgument),
		errors.Is(err, domain.ErrEmptyName),
		errors.Is(err, domain.ErrEmptyRut),
		errors.Is(err, domain.ErrNegativeBalance):
		return status.Error(codes.InvalidArgument, err.Error())

	case errors.Is(err, domain.ErrInsufficientFunds):
		return status.Error(codes.FailedPrecondition, err.Error())

	case errors.Is(err, domain.ErrConcurrentModification),
		errors.Is(err, domain.ErrLockNotAcquired):
		return status.Error(codes.Aborted, err.Error())

	case errors.Is(err, domain.ErrClientAlreadyExists):
		return status.Error(codes.AlreadyExists, err.Error())

	case errors.Is(err, domain.ErrStoreFailure):
		// the store's own message is surfaced unmodified
		return status.Error(codes.Internal, err.Error())

	default:
		return status.Error(codes.Internal, "internal server error")
	}
}
