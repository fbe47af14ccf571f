package httputil

import (
	"errors"
	"net/http"

	"github.com/cashtracker/backend/internal/account"
	"github.com/cashtracker/backend/internal/guard"
	"github.com/cashtracker/backend/internal/models"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// HTTPError is used for error responses that contain a body.
type HTTPError struct {
	Error string `json:"error" example:"budget not found"`
}

// statuses maps known errors to their HTTP status. The first match wins.
var statuses = []struct {
	err    error
	status int
}{
	{account.ErrDuplicateEmail, http.StatusConflict},
	{account.ErrInvalidToken, http.StatusUnauthorized},
	{account.ErrTokenNotFound, http.StatusNotFound},
	{account.ErrUserNotFound, http.StatusNotFound},
	{account.ErrNotConfirmed, http.StatusForbidden},
	{account.ErrIncorrectPassword, http.StatusUnauthorized},
	{account.ErrUnauthorized, http.StatusUnauthorized},
	{guard.ErrBudgetNotFound, http.StatusNotFound},
	{guard.ErrInvalidAction, http.StatusUnauthorized},
	{guard.ErrExpenseNotFound, http.StatusNotFound},
	{guard.ErrExpenseNotInBudget, http.StatusForbidden},
	{ErrRequestBodyEmpty, http.StatusBadRequest},
	{ErrInvalidBody, http.StatusBadRequest},
	{models.ErrResourceNotFound, http.StatusNotFound},
}

// Status returns the HTTP status for err and the error whose message is
// sent to the client.
//
// Errors that are not known are reported as models.ErrGeneral with
// http.StatusInternalServerError.
func Status(err error) (int, error) {
	var v ValidationErrors
	if errors.As(err, &v) {
		return http.StatusBadRequest, v
	}

	for _, s := range statuses {
		if errors.Is(err, s.err) {
			return s.status, s.err
		}
	}

	return http.StatusInternalServerError, models.ErrGeneral
}

// Error writes the response for err.
//
// Validation errors are sent as a list, all other errors as a single
// message. The cause of internal errors is logged, but never sent.
func Error(c *gin.Context, err error) {
	status, public := Status(err)

	var v ValidationErrors
	if errors.As(public, &v) {
		c.JSON(status, v)
		return
	}

	if status == http.StatusInternalServerError {
		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
	}

	c.JSON(status, HTTPError{Error: public.Error()})
}
