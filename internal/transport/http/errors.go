package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/light-bringer/karting-service/internal/app/karting/domain"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(c *gin.Context, status int, msg string) {
	c.JSON(status, errorResponse{Error: msg})
}

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrClientNotFound),
		errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrKartNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidFeeOption),
		errors.Is(err, domain.ErrInvalidNumberOfPersons),
		errors.Is(err, domain.ErrMissingStartTime),
		errors.Is(err, domain.ErrInvalidArgument),
		errors.Is(err, domain.ErrEmptyName),
		errors.Is(err, domain.ErrEmptyRut),
		errors.Is(err, domain.ErrNegativeBalance):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusPaymentRequired
	case errors.Is(err, domain.ErrConcurrentModification),
		errors.Is(err, domain.ErrLockNotAcquired),
		errors.Is(err, domain.ErrClientAlreadyExists):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func writeDomainError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError && !errors.Is(err, domain.ErrStoreFailure) {
		writeError(c, status, "internal error")
		return
	}
	writeError(c, status, err.Error())
}
