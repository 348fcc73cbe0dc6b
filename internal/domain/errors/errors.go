package errors

import (
	"net/http"

	"mdm/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// License-related errors
	ErrNoLicenseAvailable = NewBaseError(
		http.StatusConflict,
		"NO_LICENSE_AVAILABLE",
		"沒有可用的授權",
		"",
	)

	ErrLicenseNotFound = NewBaseError(
		http.StatusNotFound,
		"LICENSE_NOT_FOUND",
		"找不到該授權",
		"",
	)

	ErrDeviceMismatch = NewBaseError(
		http.StatusConflict,
		"DEVICE_MISMATCH",
		"裝置識別碼與授權綁定的不符",
		"",
	)

	// Device-related errors
	ErrDeviceNotFound = NewBaseError(
		http.StatusNotFound,
		"DEVICE_NOT_FOUND",
		"找不到該裝置",
		"",
	)

	ErrDeviceAlreadyEnrolled = NewBaseError(
		http.StatusConflict,
		"DEVICE_ALREADY_ENROLLED",
		"此裝置已註冊且仍在管理中",
		"",
	)

	ErrInvalidDeviceState = NewBaseError(
		http.StatusConflict,
		"INVALID_DEVICE_STATE",
		"裝置目前的狀態不允許此操作",
		"",
	)

	ErrDeviceReleased = NewBaseError(
		http.StatusConflict,
		"DEVICE_RELEASED",
		"裝置已釋放，無法再進行操作",
		"",
	)

	// Unlock code errors
	ErrInvalidUnlockCode = NewBaseError(
		http.StatusBadRequest,
		"INVALID_UNLOCK_CODE",
		"解鎖碼錯誤或已失效",
		"",
	)

	// Enrollment token errors
	ErrTokenNotFound = NewBaseError(
		http.StatusNotFound,
		"TOKEN_NOT_FOUND",
		"找不到該註冊權杖",
		"",
	)

	ErrTokenExpired = NewBaseError(
		http.StatusGone,
		"TOKEN_EXPIRED",
		"註冊權杖已過期",
		"",
	)

	ErrTokenAlreadyConsumed = NewBaseError(
		http.StatusConflict,
		"TOKEN_ALREADY_CONSUMED",
		"註冊權杖已被使用",
		"",
	)

	// Policy-related errors
	ErrPolicyNotFound = NewBaseError(
		http.StatusNotFound,
		"POLICY_NOT_FOUND",
		"找不到該政策",
		"",
	)

	ErrDuplicatePolicyName = NewBaseError(
		http.StatusConflict,
		"DUPLICATE_POLICY_NAME",
		"此租戶已存在同名政策",
		"",
	)

	ErrCannotDeleteDefault = NewBaseError(
		http.StatusConflict,
		"CANNOT_DELETE_DEFAULT",
		"預設政策無法刪除",
		"",
	)

	ErrNoDefaultPolicy = NewBaseError(
		http.StatusConflict,
		"NO_DEFAULT_POLICY",
		"此租戶尚未設定預設政策",
		"",
	)

	// Account-related errors
	ErrResellerNotFound = NewBaseError(
		http.StatusNotFound,
		"RESELLER_NOT_FOUND",
		"找不到該經銷商",
		"",
	)

	ErrResellerAlreadyExists = NewBaseError(
		http.StatusConflict,
		"RESELLER_ALREADY_EXISTS",
		"此電子郵件已被註冊為經銷商",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"電子郵件或密碼錯誤",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"密碼處理錯誤",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"輸入資料驗證失敗",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"資料庫交易失敗",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"系統內部錯誤",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"存取被拒絕",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"找不到該資源",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"資源衝突",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "資料庫執行失敗"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
