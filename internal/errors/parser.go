package errors

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// ErrorInfo pairs an error code with a message safe to show the caller.
type ErrorInfo struct {
	Code    string
	Message string
}

// ParseError converts storage errors into caller-safe codes and messages.
// Driver internals stay out of the response; the full error is expected to
// have been logged by the caller.
func ParseError(err error, context string) ErrorInfo {
	if err == nil {
		return ErrorInfo{Code: InternalServerError, Message: "An internal error occurred"}
	}

	errStr := strings.ToLower(err.Error())

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrorInfo{Code: ResourceNotFound, Message: notFoundMessage(context)}
	}

	// Unique constraint violation (postgres 23505, sqlite "UNIQUE constraint failed")
	if strings.Contains(errStr, "duplicate key") || strings.Contains(errStr, "unique constraint") {
		if strings.Contains(errStr, "locale") {
			return ErrorInfo{
				Code:    ResourceAlreadyExists,
				Message: "A translation for this locale already exists",
			}
		}
		return ErrorInfo{Code: ResourceAlreadyExists, Message: "The record already exists"}
	}

	// Foreign key constraint violation (postgres 23503)
	if strings.Contains(errStr, "foreign key constraint") {
		if strings.Contains(errStr, "product_id") || strings.Contains(errStr, "pack_id") {
			return ErrorInfo{Code: ProductNotFound, Message: "The referenced product does not exist"}
		}
		if strings.Contains(errStr, "option_id") {
			return ErrorInfo{Code: OptionNotFound, Message: "The referenced option does not exist"}
		}
		return ErrorInfo{Code: ResourceNotFound, Message: "The referenced record does not exist"}
	}

	// Not null constraint violation (postgres 23502)
	if strings.Contains(errStr, "null value") && strings.Contains(errStr, "not-null constraint") {
		return ErrorInfo{Code: ValidationRequired, Message: "A required field is missing"}
	}

	if strings.Contains(errStr, "connection refused") ||
		strings.Contains(errStr, "no such host") ||
		strings.Contains(errStr, "timeout") {
		return ErrorInfo{
			Code:    InternalDatabaseError,
			Message: "The storage backend is unavailable. Please try again later",
		}
	}

	return ErrorInfo{Code: InternalServerError, Message: defaultMessage(context)}
}

func notFoundMessage(context string) string {
	c := strings.ToLower(context)
	switch {
	case strings.Contains(c, "product"):
		return "Product not found"
	case strings.Contains(c, "option"):
		return "Option not found"
	case strings.Contains(c, "offer"):
		return "Offer not found"
	}
	return "The requested record was not found"
}

func defaultMessage(context string) string {
	c := strings.ToLower(context)
	switch {
	case strings.Contains(c, "create"):
		return "An error occurred while creating the record. Please try again later"
	case strings.Contains(c, "update"):
		return "An error occurred while updating the record. Please try again later"
	case strings.Contains(c, "delete"):
		return "An error occurred while deleting the record. Please try again later"
	}
	return "An internal error occurred. Please try again later"
}
