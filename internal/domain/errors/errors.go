// Package errors defines the application error contract shared by the
// usecase and delivery layers.
package errors

import "net/http"

// AppError is the interface the delivery layer maps onto HTTP responses.
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is the standard AppError implementation.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error.
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface.
func (e *BaseError) Error() string {
	return e.message
}

// HTTPCode returns the HTTP status code.
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code.
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message.
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information.
func (e *BaseError) Details() string {
	return e.details
}

// Is matches by business error code, so a WithDetails copy still compares
// equal to its sentinel.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// WithDetails returns a copy carrying detailed error information.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types.
var (
	// Session / identity errors.
	ErrSessionRequired = NewBaseError(
		http.StatusUnauthorized,
		"SESSION_REQUIRED",
		"sign in to continue",
		"",
	)

	ErrSessionExpired = NewBaseError(
		http.StatusUnauthorized,
		"SESSION_EXPIRED",
		"your session has expired, sign in again",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"email or password is incorrect",
		"",
	)

	// Backend gateway errors.
	ErrBackendUnavailable = NewBaseError(
		http.StatusBadGateway,
		"BACKEND_UNAVAILABLE",
		"the store is temporarily unavailable",
		"",
	)

	ErrBackendRejected = NewBaseError(
		http.StatusConflict,
		"REQUEST_REJECTED",
		"the store rejected the request",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"the requested resource was not found",
		"",
	)

	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"product not found",
		"",
	)

	// Cart / mutation errors.
	ErrCartItemNotFound = NewBaseError(
		http.StatusNotFound,
		"CART_ITEM_NOT_FOUND",
		"that item is not in your cart",
		"",
	)

	ErrMutationInFlight = NewBaseError(
		http.StatusConflict,
		"MUTATION_IN_FLIGHT",
		"a change for this item is still being applied",
		"",
	)

	// Order errors.
	ErrOrderNotCancellable = NewBaseError(
		http.StatusConflict,
		"ORDER_NOT_CANCELLABLE",
		"only pending orders can be cancelled",
		"",
	)

	// Checkout wizard errors.
	ErrCheckoutNotStarted = NewBaseError(
		http.StatusConflict,
		"CHECKOUT_NOT_STARTED",
		"checkout has not been started",
		"",
	)

	ErrAddressNotSelected = NewBaseError(
		http.StatusUnprocessableEntity,
		"ADDRESS_NOT_SELECTED",
		"select a shipping address to continue",
		"",
	)

	ErrWizardAtFinalStep = NewBaseError(
		http.StatusConflict,
		"WIZARD_AT_FINAL_STEP",
		"already at the review step",
		"",
	)

	// Input errors.
	ErrInvalidInput = NewBaseError(
		http.StatusBadRequest,
		"INVALID_INPUT",
		"the request is invalid",
		"",
	)
)
