package fetch

import (
	"errors"
	"fmt"
)

// Kind classifies fetch failures so callers can decide whether a fallback
// source is worth trying.
type Kind string

const (
	KindTimeout Kind = "timeout"
	KindNetwork Kind = "network"
	KindStatus  Kind = "status"
	KindDecode  Kind = "decode"
)

// Error is the typed failure returned by the client. Status is only set for
// KindStatus errors.
type Error struct {
	Kind   Kind
	Status int
	URL    string
	Err    error
}

func (e *Error) Error() string {
	if e.Kind == KindStatus {
		return fmt.Sprintf("fetch %s: unexpected status %d", e.URL, e.Status)
	}
	return fmt.Sprintf("fetch %s: %s: %v", e.URL, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsStatus reports whether err is a status error with the given code.
func IsStatus(err error, status int) bool {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind == KindStatus && fe.Status == status
	}
	return false
}

// IsNotFound reports whether err is an upstream 404.
func IsNotFound(err error) bool {
	return IsStatus(err, 404)
}
