package korapay

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrMissingField is returned when a successful reply lacks the field the caller needs
	ErrMissingField = errors.New("korapay response missing expected field")
	// ErrInsecureRedirect is returned for a non-HTTPS redirect URL outside development
	ErrInsecureRedirect = errors.New("redirect_url must be https in production")
	// ErrInvalidAmount is returned when a payout amount is not strictly positive
	ErrInvalidAmount = errors.New("payout amount must be greater than zero")
	// ErrInvalidBankCode is returned for a bank code that is not at least 3 digits
	ErrInvalidBankCode = errors.New("invalid bank code")
	// ErrInvalidAccountNumber is returned for an account number that is not exactly 10 digits
	ErrInvalidAccountNumber = errors.New("invalid account number")
)

// HTTPError is a non-success reply from Korapay
type HTTPError struct {
	Op         string
	StatusCode int
	Body       []byte
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("korapay %s failed with status %d", e.Op, e.StatusCode)
}

// Retryable reports whether the same request may succeed later
func (e *HTTPError) Retryable() bool {
	return e.StatusCode >= http.StatusInternalServerError || e.StatusCode == http.StatusTooManyRequests
}

// IsValidationError reports whether err was raised locally before any request
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrInvalidBankCode) ||
		errors.Is(err, ErrInvalidAccountNumber)
}
