package apperr

import (
	"sort"
	"strings"
)

// ValidationError reports malformed caller input. Fields, when set, maps a field
// path to the problems found with it.
type ValidationError struct {
	Message string
	Fields  map[string][]string
	Err     error
}

func (e *ValidationError) Error() string {
	msg := e.Message
	if len(e.Fields) > 0 {
		keys := make([]string, 0, len(e.Fields))
		for k := range e.Fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, k+": "+strings.Join(e.Fields[k], ", "))
		}
		msg += " (" + strings.Join(parts, "; ") + ")"
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func NewValidation(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

func NewValidationWrap(msg string, err error) *ValidationError {
	return &ValidationError{Message: msg, Err: err}
}

func NewFieldValidation(msg string, fields map[string][]string) *ValidationError {
	return &ValidationError{Message: msg, Fields: fields}
}

// NotFoundError reports a referenced resource that does not exist.
type NotFoundError struct {
	Resource string
	Message  string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func NewNotFound(resource, msg string) *NotFoundError {
	return &NotFoundError{Resource: resource, Message: msg}
}

// UpstreamError reports a failed call to the headlines provider. Message is safe
// to show to callers.
type UpstreamError struct {
	Message    string
	StatusCode int
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// NewUpstream builds an UpstreamError, translating provider vocabulary into the
// one used by this API.
func NewUpstream(msg string, status int, err error) *UpstreamError {
	return &UpstreamError{
		Message:    strings.ReplaceAll(msg, "category", "channel"),
		StatusCode: status,
		Err:        err,
	}
}
