package walk

import (
	"errors"
	"io/fs"
	"syscall"
)

var (
	// ErrAccessDenied marks a directory the process may not list.
	ErrAccessDenied = errors.New("filewalker: access denied")

	// ErrPathTooLong marks a directory whose path exceeds platform limits.
	ErrPathTooLong = errors.New("filewalker: path too long")

	// ErrInvalidPattern is returned by Search for a malformed glob.
	ErrInvalidPattern = errors.New("filewalker: invalid pattern")
)

// listError carries the kind of a listing failure next to its cause.
type listError struct {
	kind error
	path string
	err  error
}

func (e *listError) Error() string {
	return e.kind.Error() + ": " + e.path + ": " + e.err.Error()
}

func (e *listError) Unwrap() []error { return []error{e.kind, e.err} }

// classifyListError maps a raw listing error onto ErrAccessDenied or
// ErrPathTooLong. Other errors are returned unchanged.
func classifyListError(path string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrAccessDenied), errors.Is(err, ErrPathTooLong):
		return err
	case errors.Is(err, fs.ErrPermission):
		return &listError{kind: ErrAccessDenied, path: path, err: err}
	case errors.Is(err, syscall.ENAMETOOLONG):
		return &listError{kind: ErrPathTooLong, path: path, err: err}
	default:
		return err
	}
}
