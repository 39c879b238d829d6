// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/llehouerou/trialsearch/internal/trials"
)

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Search operations
	OpSearch     Op = "search diseases"
	OpLoadResult Op = "load suggestions"

	// Navigation
	OpOpenURL Op = "open trial search"

	// Startup
	OpLoadConfig Op = "load config"
	OpOpenLog    Op = "open log file"
	OpInitialize Op = "initialize application"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}

// Reason gives a short, non-technical cause for a search failure.
func Reason(err error) string {
	var apiErr *trials.APIError
	var netErr net.Error
	switch {
	case err == nil:
		return ""
	case errors.Is(err, context.DeadlineExceeded):
		return "timed out"
	case errors.Is(err, context.Canceled):
		return "canceled"
	case errors.As(err, &apiErr):
		return "service error " + apiErr.Code
	case errors.Is(err, trials.ErrMalformedResponse):
		return "unexpected response"
	case errors.As(err, &netErr):
		return "network unavailable"
	default:
		return "request failed"
	}
}
