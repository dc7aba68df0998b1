package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/piresc/duespay/internal/pkg/circuitbreaker"
	"github.com/piresc/duespay/internal/pkg/korapay"
	"github.com/piresc/duespay/internal/pkg/logger"
	"github.com/piresc/duespay/internal/pkg/models"
	"github.com/piresc/duespay/internal/utils"
)

// statusFor maps a use case error to the HTTP status the caller sees
func statusFor(err error) int {
	var httpErr *korapay.HTTPError
	switch {
	case errors.Is(err, models.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, korapay.ErrInsecureRedirect),
		errors.Is(err, models.ErrConfiguration),
		korapay.IsValidationError(err):
		return http.StatusInternalServerError
	case errors.As(err, &httpErr),
		errors.Is(err, models.ErrUpstream),
		errors.Is(err, korapay.ErrMissingField),
		errors.Is(err, circuitbreaker.ErrCircuitBreakerOpen),
		errors.Is(err, circuitbreaker.ErrTooManyRequests),
		errors.Is(err, context.DeadlineExceeded):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

// errorResponse writes err with its mapped status. Server-side failures do
// not leak internals to the caller.
func errorResponse(c echo.Context, err error, op string) error {
	status := statusFor(err)
	ctx := c.Request().Context()

	switch status {
	case http.StatusBadRequest:
		return utils.BadRequestResponse(c, clientMessage(err, models.ErrValidation))
	case http.StatusNotFound:
		return utils.NotFoundResponse(c, clientMessage(err, models.ErrNotFound))
	case http.StatusBadGateway:
		logger.ErrorCtx(ctx, op+" failed upstream", logger.Err(err))
		return utils.BadGatewayResponse(c, "Payment provider unavailable, please try again")
	}

	logger.ErrorCtx(ctx, op+" failed", logger.Err(err))
	if errors.Is(err, korapay.ErrInsecureRedirect) || errors.Is(err, models.ErrConfiguration) {
		return utils.InternalServerErrorResponse(c, "Payment configuration error")
	}
	if korapay.IsValidationError(err) {
		return utils.InternalServerErrorResponse(c, err.Error())
	}
	return utils.InternalServerErrorResponse(c, "")
}

// clientMessage strips the sentinel prefix from a wrapped error
func clientMessage(err, sentinel error) string {
	msg := strings.TrimPrefix(err.Error(), sentinel.Error()+": ")
	if msg == "" {
		return sentinel.Error()
	}
	return msg
}
