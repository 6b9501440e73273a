package mapapi

import (
	stderrors "errors"
	"net/http"
	"strings"
)

// Kind classifies REST failures so callers can choose between degrading a
// section silently and alerting the user.
type Kind string

const (
	KindUnknown Kind = "unknown"
	// KindTransport covers network failures and bodies that are not JSON.
	KindTransport Kind = "transport"
	// KindRejected covers application-level failures: success=false, an error
	// field, or a non-2xx status.
	KindRejected Kind = "rejected"
	KindNotFound Kind = "not_found"
)

// Error is a typed REST failure.
type Error struct {
	Kind Kind
	// Status is the HTTP status code, zero when no response was received.
	Status int
	// Message is the server-provided error text, if any.
	Message string
	Op      string
	Cause   error
}

// Error renders the failure for logs.
func (e *Error) Error() string {
	var b strings.Builder
	if e.Op != "" {
		b.WriteString(e.Op)
		b.WriteString(": ")
	}
	b.WriteString(string(e.Kind))
	if e.Status != 0 {
		b.WriteString(" (")
		b.WriteString(http.StatusText(e.Status))
		b.WriteString(")")
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches another *Error by kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// Sentinels for errors.Is checks.
var (
	ErrTransport = &Error{Kind: KindTransport}
	ErrRejected  = &Error{Kind: KindRejected}
	ErrNotFound  = &Error{Kind: KindNotFound}
)

// KindOf returns the failure kind, KindUnknown for foreign errors.
func KindOf(err error) Kind {
	var apiErr *Error
	if !stderrors.As(err, &apiErr) {
		return KindUnknown
	}
	return apiErr.Kind
}

// IsTransport reports whether err is a network or decoding failure.
func IsTransport(err error) bool {
	return KindOf(err) == KindTransport
}

// ServerMessage returns the server-provided error text carried by err.
func ServerMessage(err error) string {
	var apiErr *Error
	if !stderrors.As(err, &apiErr) {
		return ""
	}
	return strings.TrimSpace(apiErr.Message)
}
