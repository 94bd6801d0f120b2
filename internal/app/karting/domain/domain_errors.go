package domain

import "errors"

// Domain errors as sentinel values
var (
	// Booking errors
	ErrBookingNotFound        = errors.New("booking not found")
	ErrInvalidFeeOption       = errors.New("invalid fee option")
	ErrInvalidNumberOfPersons = errors.New("number of persons must be at least 1")
	ErrMissingStartTime       = errors.New("booking start time is required")

	// Client errors
	ErrClientNotFound      = errors.New("client not found")
	ErrClientAlreadyExists = errors.New("client with this rut already exists")
	ErrInsufficientFunds   = errors.New("insufficient funds")
	ErrEmptyName           = errors.New("name cannot be empty")
	ErrEmptyRut            = errors.New("rut cannot be empty")
	ErrNegativeBalance     = errors.New("cash balance cannot be negative")

	// Kart errors
	ErrKartNotFound = errors.New("kart not found")

	// Request and infrastructure errors
	ErrInvalidArgument        = errors.New("invalid argument")
	ErrStoreFailure           = errors.New("store failure")
	ErrConcurrentModification = errors.New("concurrent modification detected")
	ErrLockNotAcquired        = errors.New("client is busy with another booking")
)

// StoreError wraps a persistence failure. Its message is the underlying
// store's message, unmodified, so callers can surface it verbatim.
type StoreError struct {
	Err error
}

// NewStoreError wraps err. A nil err yields nil.
func NewStoreError(err error) error {
	if err == nil {
		return nil
	}
	var se *StoreError
	if errors.As(err, &se) {
		return err
	}
	return &StoreError{Err: err}
}

func (e *StoreError) Error() string { return e.Err.Error() }

func (e *StoreError) Unwrap() error { return e.Err }

// Is reports StoreError as ErrStoreFailure for errors.Is checks.
func (e *StoreError) Is(target error) bool {
	return target == ErrStoreFailure
}
