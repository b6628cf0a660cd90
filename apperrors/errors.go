package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a failure so controllers can map it to an HTTP status
// without inspecting message text.
type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindConflict
	KindAuthentication
	KindNotFound
	KindPermission
	KindInfrastructure
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindConflict:
		return "conflict"
	case KindAuthentication:
		return "authentication"
	case KindNotFound:
		return "not_found"
	case KindPermission:
		return "permission"
	case KindInfrastructure:
		return "infrastructure"
	default:
		return "unknown"
	}
}

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

func Authentication(message string) *Error {
	return &Error{Kind: KindAuthentication, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func Permission(message string) *Error {
	return &Error{Kind: KindPermission, Message: message}
}

func Infrastructure(message string, err error) *Error {
	return &Error{Kind: KindInfrastructure, Message: message, Err: err}
}

// KindOf returns the kind carried by err, or KindUnknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// statusTable is evaluated once at the controller boundary. Conflict maps to
// 400 because the register endpoint has always reported 400 for a duplicate
// email; the kind still distinguishes it for logs and tests.
var statusTable = map[Kind]int{
	KindValidation:     http.StatusBadRequest,
	KindConflict:       http.StatusBadRequest,
	KindAuthentication: http.StatusUnauthorized,
	KindNotFound:       http.StatusNotFound,
	KindPermission:     http.StatusForbidden,
	KindInfrastructure: http.StatusInternalServerError,
}

// Status maps err to an HTTP status code via the kind table.
func Status(err error) int {
	if s, ok := statusTable[KindOf(err)]; ok {
		return s
	}
	return http.StatusInternalServerError
}

// StatusWith is Status with per-endpoint overrides. The comment endpoints
// report 400 for not-found and permission failures.
func StatusWith(err error, overrides map[Kind]int) int {
	if s, ok := overrides[KindOf(err)]; ok {
		return s
	}
	return Status(err)
}

// Public returns the message safe to expose to the client. Infrastructure and
// unclassified errors collapse to the given generic message.
func Public(err error, generic string) string {
	var e *Error
	if errors.As(err, &e) && e.Kind != KindInfrastructure && e.Kind != KindUnknown {
		return e.Message
	}
	return generic
}
