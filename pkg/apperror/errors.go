package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Order Lifecycle (ORD) ----

func ErrOrderNotFound(orderID int64) *AppError {
	return New("ORD_001", fmt.Sprintf("Order %d not found", orderID), http.StatusNotFound)
}

// ErrInvalidTransition reports a status change not present in the
// transition graph, naming both states so the caller knows exactly
// which move was rejected.
func ErrInvalidTransition(current, next string) *AppError {
	return New("ORD_002",
		fmt.Sprintf("Cannot transition order from %q to %q", current, next),
		http.StatusUnprocessableEntity)
}

func ErrUnknownStatus(status string) *AppError {
	return New("ORD_003", fmt.Sprintf("Unknown order status %q", status), http.StatusBadRequest)
}

// ---- Payments (PAY) ----

// ErrPaymentDeclined carries the authority's own error message through to
// the caller.
func ErrPaymentDeclined(reason string) *AppError {
	if reason == "" {
		reason = "Payment was declined"
	}
	return New("PAY_001", reason, http.StatusPaymentRequired)
}

// ---- Webhook Security (SEC) ----

func ErrMissingSignature() *AppError {
	return New("SEC_001", "Missing x-signature header", http.StatusUnauthorized)
}

func ErrInvalidSignature() *AppError {
	return New("SEC_002", "Invalid webhook signature", http.StatusUnauthorized)
}

func ErrInvalidToken() *AppError {
	return New("SEC_003", "Invalid or expired token", http.StatusUnauthorized)
}

// ---- Partner Webhooks (WBH) ----

func ErrMalformedWebhook(err error) *AppError {
	return Wrap("WBH_001", "Malformed webhook payload", http.StatusBadRequest, err)
}

func ErrIncompleteCoupon() *AppError {
	return New("WBH_002", "Coupon payload missing customer email or coupon code", http.StatusBadRequest)
}

// ---- Validation (VAL) ----

// Validation returns a generic bad-request error.
func Validation(message string) *AppError {
	return New("VAL_001", message, http.StatusBadRequest)
}

// ---- System & Infrastructure (SYS) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_001", "Internal database error", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}
