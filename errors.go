package gmdh

import (
	"fmt"

	"github.com/pkg/errors"
)

// Sentinel errors. Each subsystem wraps one of these with context via wrap,
// so callers can test with errors.Is(err, gmdh.ErrInvalidArgument) etc.
var (
	// ErrInvalidArgument marks a structural/argument error that must be
	// caught before any fitting work begins.
	ErrInvalidArgument = errors.New("gmdh: invalid argument")

	// ErrCriterion is a criterion-error sentinel that no function in this
	// package returns; criterion composition errors wrap ErrInvalidArgument.
	ErrCriterion = errors.New("gmdh: criterion error")

	// ErrDriver marks an internal search-driver invariant violation.
	ErrDriver = errors.New("gmdh: driver error")

	// ErrFamily marks a model-family mismatch or unsupported operation.
	ErrFamily = errors.New("gmdh: family error")

	// ErrSplit is a data-splitting sentinel that no function in this
	// package returns; TimeSeriesTransformation's argument errors wrap
	// ErrInvalidArgument.
	ErrSplit = errors.New("gmdh: split error")

	// ErrPersist marks a save/load failure. See PersistError for the
	// non-raising exit-code contract callers can rely on.
	ErrPersist = errors.New("gmdh: persistence error")
)

// wrap attaches context to a sentinel error, following the
// wrap(ErrXxx, msg) convention used throughout this package.
func wrap(sentinel error, context string) error {
	return errors.Wrap(sentinel, context)
}

func wrapf(sentinel error, format string, args ...any) error {
	return errors.Wrap(sentinel, fmt.Sprintf(format, args...))
}

// PersistCode is the non-raising exit code contract for Save/Load.
type PersistCode int

const (
	PersistOK            PersistCode = 0
	PersistIOFailure     PersistCode = 1
	PersistMalformed     PersistCode = 2
	PersistWrongFamily   PersistCode = 3
)

// PersistError carries the exit code alongside a normal error so Save/Load
// can be used idiomatically (check err != nil) while still exposing the
// distinct codes callers need to branch on without parsing error strings.
type PersistError struct {
	Code PersistCode
	Err  error
}

func (e *PersistError) Error() string { return e.Err.Error() }
func (e *PersistError) Unwrap() error { return e.Err }

func persistErr(code PersistCode, sentinel error, context string) error {
	return &PersistError{Code: code, Err: wrap(sentinel, context)}
}

// ErrorCode extracts the PersistCode from a Save/Load error, or PersistOK
// if err is nil. Non-persistence errors report PersistMalformed.
func ErrorCode(err error) PersistCode {
	if err == nil {
		return PersistOK
	}
	var pe *PersistError
	if errors.As(err, &pe) {
		return pe.Code
	}
	return PersistMalformed
}
