package apperrors

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error represents an application error with an HTTP status code.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a new Error
func New(code int, message string, err error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Wrap attaches a cause to a sentinel without mutating it.
func Wrap(sentinel *Error, err error) *Error {
	return &Error{
		Code:    sentinel.Code,
		Message: sentinel.Message,
		Err:     err,
	}
}

// Common error types
var (
	ErrBadRequest     = New(http.StatusBadRequest, "Bad request", nil)
	ErrUnauthorized   = New(http.StatusUnauthorized, "Unauthorized", nil)
	ErrForbidden      = New(http.StatusForbidden, "Forbidden", nil)
	ErrNotFound       = New(http.StatusNotFound, "Not found", nil)
	ErrConflict       = New(http.StatusConflict, "Conflict", nil)
	ErrInternalServer = New(http.StatusInternalServerError, "Internal server error", nil)
)

// Validation error types
var (
	ErrValidation      = New(http.StatusBadRequest, "Validation error", nil)
	ErrInvalidQuantity = New(http.StatusBadRequest, "Quantity must be greater than zero", nil)
	ErrInvalidObjectID = New(http.StatusBadRequest, "Invalid id format", nil)
)

// Business logic error types
var (
	ErrInsufficientStock  = New(http.StatusBadRequest, "Insufficient stock", nil)
	ErrPendingOrders      = New(http.StatusConflict, "Product has pending orders", nil)
	ErrInvalidOrderState  = New(http.StatusConflict, "Order state does not allow this transition", nil)
	ErrEmptyCart          = New(http.StatusInternalServerError, "Cart is empty after adding an item", nil)
	ErrDuplicateEmail     = New(http.StatusConflict, "Email is already registered", nil)
	ErrRankingExists      = New(http.StatusConflict, "Ranking cannot be modified once submitted", nil)
	ErrAccountInactive    = New(http.StatusForbidden, "Account is deactivated", nil)
	ErrInvalidCredentials = New(http.StatusUnauthorized, "Invalid credentials", nil)
)

// Respond writes err as a JSON response. Unknown errors become a generic
// 500 so store internals never leak to clients.
func Respond(c *gin.Context, err error) {
	var appErr *Error
	if errors.As(err, &appErr) {
		c.JSON(appErr.Code, gin.H{"message": appErr.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"message": "An unexpected error occurred"})
}

// Is reports whether err matches the sentinel by code and message.
func Is(err error, sentinel *Error) bool {
	var appErr *Error
	if !errors.As(err, &appErr) {
		return false
	}
	return appErr.Code == sentinel.Code && appErr.Message == sentinel.Message
}
