package errs

// Error taxonomy shared by every layer. Concrete errors are marked with one of
// these so callers can classify them with Is.
var (
	// caller input malformed, rejected before any job or token row is created
	ErrValidation = New("validation error")

	// referenced job, token or subject absent
	ErrNotFound = New("not found")

	// wrong, already used and expired tokens are deliberately indistinguishable
	ErrInvalidOrExpiredToken = New("invalid or expired token")

	// broker enqueue failed after the row was created
	ErrDispatch = New("dispatch failed")

	// the worker side effect itself failed
	ErrEffect = New("effect failed")

	ErrForbidden = New("forbidden")

	ErrDatabaseOperationFailed = New("database operation failed")
)

func Validation(msg string) error {
	return Mark(New(msg), ErrValidation)
}
