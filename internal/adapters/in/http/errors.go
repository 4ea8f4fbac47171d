package http

import (
	"errors"
	"net/http"

	"seaport/internal/core/application/usecases/commands"
	"seaport/internal/core/domain/services"
	"seaport/internal/pkg/errs"
)

// Error is the JSON body of every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// statusFor maps an error family to an HTTP status code.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrAlreadyExists),
		errors.Is(err, errs.ErrAlreadyAssigned),
		errors.Is(err, errs.ErrResourceOccupied),
		errors.Is(err, services.ErrNoSuitableBerth),
		errors.Is(err, commands.ErrQueueIsEmpty):
		return http.StatusConflict
	case errors.Is(err, errs.ErrInvalidStatus),
		errors.Is(err, errs.ErrInvalidOperation),
		errors.Is(err, errs.ErrCapacityExceeded):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
