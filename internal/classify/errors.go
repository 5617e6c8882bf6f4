package classify

import (
	"errors"
	"fmt"
	"os"
	"syscall"
)

// ErrorKind categorizes why a classifier operation failed
type ErrorKind int

const (
	KindNotFound ErrorKind = iota
	KindPermissionDenied
	KindIO
	KindInvalidArgument
	KindUnknown
)

// String returns a human-readable error kind
func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "Not found"
	case KindPermissionDenied:
		return "Permission denied"
	case KindIO:
		return "I/O error"
	case KindInvalidArgument:
		return "Invalid argument"
	case KindUnknown:
		return "Unknown error"
	default:
		return "Unspecified error"
	}
}

// ClassifyError is a categorized per-path error
type ClassifyError struct {
	Path string
	Kind ErrorKind
	Err  error
}

// Error implements the error interface
func (e *ClassifyError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s (%v)", e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s (%v)", e.Path, e.Kind, e.Err)
}

// Unwrap returns the underlying error
func (e *ClassifyError) Unwrap() error {
	return e.Err
}

// Categorize analyzes an error and returns a categorized ClassifyError
func Categorize(path string, err error) *ClassifyError {
	if err == nil {
		return nil
	}

	cerr := &ClassifyError{
		Path: path,
		Kind: KindUnknown,
		Err:  err,
	}

	if os.IsNotExist(err) {
		cerr.Kind = KindNotFound
		return cerr
	}

	if os.IsPermission(err) {
		cerr.Kind = KindPermissionDenied
		return cerr
	}

	var errno syscall.Errno
	if errors.As(err, &errno) {
		switch errno {
		case syscall.EACCES, syscall.EPERM:
			cerr.Kind = KindPermissionDenied
		case syscall.ENOENT:
			cerr.Kind = KindNotFound
		case syscall.EIO, syscall.EBUSY, syscall.ENOSPC:
			cerr.Kind = KindIO
		default:
			cerr.Kind = KindUnknown
		}
		return cerr
	}

	return cerr
}

// invalidArg builds an InvalidArgument error for a bad parameter
func invalidArg(format string, args ...any) *ClassifyError {
	return &ClassifyError{
		Kind: KindInvalidArgument,
		Err:  fmt.Errorf(format, args...),
	}
}

// isCrossDevice reports whether a rename failed because source and
// destination live on different filesystems.
func isCrossDevice(err error) bool {
	var errno syscall.Errno
	return errors.As(err, &errno) && errno == syscall.EXDEV
}

// GroupByKind groups errors by their kind
func GroupByKind(errs []*ClassifyError) map[ErrorKind][]*ClassifyError {
	grouped := make(map[ErrorKind][]*ClassifyError)
	for _, err := range errs {
		grouped[err.Kind] = append(grouped[err.Kind], err)
	}
	return grouped
}
