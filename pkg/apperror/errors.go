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

// ---- Wallet Ledger (WAL) ----

func ErrUnknownCurrency(currency string) *AppError {
	return New("WAL_001", fmt.Sprintf("No wallet for currency %s", currency), http.StatusNotFound)
}

func ErrInvalidAmount() *AppError {
	return New("WAL_002", "Amount must be greater than zero", http.StatusBadRequest)
}

func ErrInsufficientBalance(currency string) *AppError {
	return New("WAL_003", fmt.Sprintf("Insufficient %s balance", currency), http.StatusUnprocessableEntity)
}

func ErrSameCurrencySwap() *AppError {
	return New("WAL_004", "Swap requires two different currencies", http.StatusBadRequest)
}

// ---- Exchange Rates (RATE) ----

func ErrRateUnavailable(currency string) *AppError {
	return New("RATE_001", fmt.Sprintf("Exchange rate not available for %s", currency), http.StatusConflict)
}

// ---- System & Infrastructure (SYS) ----

func ErrStorageFailure(err error) *AppError {
	return Wrap("SYS_001", "Snapshot storage failure", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_002 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_002", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a WAL_002-style validation error with a custom message.
func Validation(message string) *AppError {
	return New("WAL_002", message, http.StatusBadRequest)
}
