package htmlwriter

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a builder usage error.
type ErrorKind string

const (
	// KindUnbalancedScope covers closing more tag scopes than were opened,
	// closing out of nesting order, and operations that require all scopes
	// to be closed first.
	KindUnbalancedScope ErrorKind = "unbalanced_scope"
	// KindInvalidTagName covers empty tag names at element creation.
	KindInvalidTagName ErrorKind = "invalid_tag_name"
	// KindSelfClosingContent covers appending children or text to a
	// self-closing element.
	KindSelfClosingContent ErrorKind = "self_closing_content"
)

// UsageError is a structured error describing a misuse of the builder API.
//
// A UsageError leaves the tree in whatever partial state existed; callers
// should discard the builder rather than attempt recovery.
type UsageError struct {
	Kind    ErrorKind
	Message string
}

// Error implements the error interface.
func (e *UsageError) Error() string {
	return fmt.Sprintf("htmlwriter: %s: %s", e.Kind, e.Message)
}

func newUsageError(kind ErrorKind, message string) *UsageError {
	return &UsageError{Kind: kind, Message: message}
}

// IsKind reports whether err is (or wraps) a UsageError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var ue *UsageError
	return errors.As(err, &ue) && ue.Kind == kind
}

// KindOf extracts the kind from err, or the empty string when err is not a
// UsageError.
func KindOf(err error) ErrorKind {
	var ue *UsageError
	if errors.As(err, &ue) {
		return ue.Kind
	}
	return ""
}
