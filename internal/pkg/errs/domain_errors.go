package errs

// Kinds every usecase error is marked with, so the handler layer can pick a
// status code without knowing module-specific errors.
var (
	ErrNotFound     = New("not found")
	ErrConflict     = New("conflict")
	ErrInvalidRange = New("invalid date range")
	ErrValidation   = New("validation failed")

	ErrDatabaseOperationFailed = New("database operation failed")
)
