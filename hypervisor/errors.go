package hypervisor

import (
	"errors"
	"fmt"
)

// Error kinds. Match with errors.Is.
var (
	ErrUnavailable     = errors.New("vmadm capability unavailable")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrPrecondition    = errors.New("precondition failed")
	ErrUndefinedStatus = errors.New("undefined vmadm exit status")
)

// Concrete errors. Messages are stable and shown to callers verbatim.
var (
	ErrMissingUUID       = newKindError(ErrInvalidArgument, "UUID parameter is mandatory")
	ErrMissingZoneFields = newKindError(ErrInvalidArgument, "Not all arguments are given")
	ErrAlreadyRunning    = newKindError(ErrPrecondition, "The specified vm is already running")
	ErrAlreadyStopped    = newKindError(ErrPrecondition, "The specified vm is already stopped")
	ErrVMStopped         = newKindError(ErrPrecondition, "The specified vm is stopped")
)

type kindError struct {
	kind error
	msg  string
}

func newKindError(kind error, msg string) error {
	return &kindError{kind: kind, msg: msg}
}

func (e *kindError) Error() string { return e.msg }

func (e *kindError) Is(target error) bool { return target == e.kind }

// ExitError reports a vmadm invocation that exited with a known non-zero status.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string { return e.Message }

// UndefinedStatus wraps ErrUndefinedStatus with the offending exit code.
func UndefinedStatus(code int) error {
	return fmt.Errorf("%w: %d", ErrUndefinedStatus, code)
}
