package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appErr   *AppError
		expected string
	}{
		{
			name:     "without wrapped error",
			appErr:   New("WAL_003", "Insufficient USD balance", http.StatusUnprocessableEntity),
			expected: "[WAL_003] Insufficient USD balance",
		},
		{
			name:     "with wrapped error",
			appErr:   Wrap("SYS_001", "Snapshot storage failure", http.StatusInternalServerError, fmt.Errorf("connection refused")),
			expected: "[SYS_001] Snapshot storage failure: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.appErr.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	inner := fmt.Errorf("inner error")
	appErr := Wrap("SYS_001", "wrapped", http.StatusInternalServerError, inner)

	assert.True(t, errors.Is(appErr, inner))
}

func TestAppError_IsNilUnwrap(t *testing.T) {
	appErr := New("WAL_001", "test", http.StatusNotFound)
	assert.Nil(t, appErr.Unwrap())
}

func TestLedgerErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"UnknownCurrency", ErrUnknownCurrency("JPY"), "WAL_001", 404},
		{"InvalidAmount", ErrInvalidAmount(), "WAL_002", 400},
		{"InsufficientBalance", ErrInsufficientBalance("USD"), "WAL_003", 422},
		{"SameCurrencySwap", ErrSameCurrencySwap(), "WAL_004", 400},
		{"RateUnavailable", ErrRateUnavailable("NGN"), "RATE_001", 409},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestErrUnknownCurrency_Message(t *testing.T) {
	err := ErrUnknownCurrency("JPY")
	assert.Contains(t, err.Message, "JPY")
}

func TestSystemErrors(t *testing.T) {
	inner := fmt.Errorf("redis: connection closed")

	storeErr := ErrStorageFailure(inner)
	assert.Equal(t, "SYS_001", storeErr.Code)
	assert.Equal(t, 500, storeErr.HTTPStatus)
	assert.True(t, errors.Is(storeErr, inner))

	intErr := InternalError(inner)
	assert.Equal(t, "SYS_002", intErr.Code)
	assert.Equal(t, 500, intErr.HTTPStatus)
}

func TestValidation(t *testing.T) {
	err := Validation("base currency is required")
	assert.Equal(t, "WAL_002", err.Code)
	assert.Equal(t, 400, err.HTTPStatus)
	assert.Contains(t, err.Message, "base currency")
}
