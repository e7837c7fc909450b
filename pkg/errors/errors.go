package errors

import "errors"

// Kind classifies an engine error into one of the four categories the
// API surfaces to callers. Every business error raised by the service
// layer carries exactly one kind.
type Kind int

const (
	KindUnknown Kind = iota
	// KindNotFound — request/acceptance/message/reference absent.
	KindNotFound
	// KindForbidden — caller lacks the required ownership or role.
	KindForbidden
	// KindInvalidState — operation not legal for the current status.
	KindInvalidState
	// KindConflict — duplicate active request, duplicate interest,
	// lost optimistic-lock update.
	KindConflict
)

// Error is a kind-classified business error.
type Error struct {
	kind Kind
	msg  string
}

func (e *Error) Error() string { return e.msg }

// NotFound creates a KindNotFound error.
func NotFound(msg string) error { return &Error{kind: KindNotFound, msg: msg} }

// Forbidden creates a KindForbidden error.
func Forbidden(msg string) error { return &Error{kind: KindForbidden, msg: msg} }

// InvalidState creates a KindInvalidState error.
func InvalidState(msg string) error { return &Error{kind: KindInvalidState, msg: msg} }

// Conflict creates a KindConflict error.
func Conflict(msg string) error { return &Error{kind: KindConflict, msg: msg} }

// KindOf extracts the kind from an error chain. Unclassified errors
// report KindUnknown and are treated as internal by the handlers.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.kind
	}
	return KindUnknown
}

func IsNotFound(err error) bool     { return KindOf(err) == KindNotFound }
func IsForbidden(err error) bool    { return KindOf(err) == KindForbidden }
func IsInvalidState(err error) bool { return KindOf(err) == KindInvalidState }
func IsConflict(err error) bool     { return KindOf(err) == KindConflict }

// ErrOptimisticLock signals that a version-guarded update matched zero
// rows: the record was modified by a concurrent operation and the
// caller should re-read and retry.
var ErrOptimisticLock = Conflict("record was modified by another operation, please refresh and retry")
