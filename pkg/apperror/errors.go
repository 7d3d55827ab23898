package apperror

import (
	"errors"
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

// Is matches on Code, so errors.Is(err, apperror.ErrSystemPaused()) holds
// regardless of message or wrapped cause.
func (e *AppError) Is(target error) bool {
	var t *AppError
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code
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

// CodeOf returns the AppError code carried by err, or "" if there is none.
func CodeOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

// Error codes. One per failure kind the ledger can report.
const (
	CodeUnauthorized             = "ACL_001"
	CodeInvalidToken             = "ACL_002"
	CodeNotFound                 = "LED_001"
	CodeInvalidState             = "LED_002"
	CodeDuplicateExternalID      = "LED_003"
	CodeAlreadyIssued            = "LED_004"
	CodeAlreadyTokenized         = "LED_005"
	CodeInsufficientBalance      = "LED_006"
	CodeInsufficientTokenBalance = "LED_007"
	CodeInvalidAmount            = "LED_008"
	CodeInvalidValue             = "LED_009"
	CodeUnsupportedAssetType     = "LED_010"
	CodeNotApproved              = "LED_011"
	CodeAlreadyProcessed         = "LED_012"
	CodeRecipientNotVerified     = "CMP_001"
	CodeSystemPaused             = "LED_013"
	CodeValidation               = "REQ_001"
	CodeIdempotencyMismatch      = "REQ_002"
	CodeIdempotencyInFlight      = "REQ_003"
	CodeRateLimitExceeded        = "RATE_001"
	CodeInternal                 = "SYS_001"
	CodeNotCommitted             = "SYS_002"
)

// ---- Access control (ACL) ----

func ErrUnauthorized(capability string) *AppError {
	return New(CodeUnauthorized, fmt.Sprintf("caller lacks the %s capability", capability), http.StatusForbidden)
}

func ErrInvalidToken() *AppError {
	return New(CodeInvalidToken, "Invalid or expired token", http.StatusUnauthorized)
}

// ---- Ledger state (LED) ----

func ErrNotFound(entity string) *AppError {
	return New(CodeNotFound, fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

func ErrInvalidState(message string) *AppError {
	return New(CodeInvalidState, message, http.StatusConflict)
}

func ErrDuplicateExternalID() *AppError {
	return New(CodeDuplicateExternalID, "Asset already registered with this external id", http.StatusConflict)
}

func ErrAlreadyIssued() *AppError {
	return New(CodeAlreadyIssued, "Asset already has tokens minted", http.StatusConflict)
}

func ErrAlreadyTokenized() *AppError {
	return New(CodeAlreadyTokenized, "Asset already tokenized", http.StatusConflict)
}

func ErrInsufficientBalance() *AppError {
	return New(CodeInsufficientBalance, "Insufficient balance", http.StatusUnprocessableEntity)
}

func ErrInsufficientTokenBalance() *AppError {
	return New(CodeInsufficientTokenBalance, "Insufficient token balance", http.StatusUnprocessableEntity)
}

func ErrInvalidAmount(message string) *AppError {
	return New(CodeInvalidAmount, message, http.StatusBadRequest)
}

func ErrInvalidValue() *AppError {
	return New(CodeInvalidValue, "Asset value must be greater than 0", http.StatusBadRequest)
}

func ErrUnsupportedAssetType(assetType string) *AppError {
	return New(CodeUnsupportedAssetType, fmt.Sprintf("Asset type %q not supported", assetType), http.StatusBadRequest)
}

func ErrNotApproved() *AppError {
	return New(CodeNotApproved, "Request not approved", http.StatusConflict)
}

func ErrAlreadyProcessed() *AppError {
	return New(CodeAlreadyProcessed, "Request already processed", http.StatusConflict)
}

func ErrSystemPaused() *AppError {
	return New(CodeSystemPaused, "Ledger is paused", http.StatusServiceUnavailable)
}

// ---- Compliance (CMP) ----

func ErrRecipientNotVerified() *AppError {
	return New(CodeRecipientNotVerified, "Recipient not KYC verified", http.StatusForbidden)
}

// ---- Request validation (REQ) ----

// Validation returns a request validation error.
func Validation(message string) *AppError {
	return New(CodeValidation, message, http.StatusBadRequest)
}

func ErrIdempotencyMismatch() *AppError {
	return New(CodeIdempotencyMismatch, "Idempotency key was used with a different request", http.StatusUnprocessableEntity)
}

func ErrIdempotencyInFlight() *AppError {
	return New(CodeIdempotencyInFlight, "A request with this idempotency key is in progress", http.StatusConflict)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New(CodeRateLimitExceeded, "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap(CodeInternal, "Internal server error", http.StatusInternalServerError, err)
}

// ErrNotCommitted reports that an operation was abandoned before commit (for
// example on a deadline); nothing was written and the call is safe to retry.
func ErrNotCommitted(err error) *AppError {
	return Wrap(CodeNotCommitted, "Operation not committed", http.StatusServiceUnavailable, err)
}
