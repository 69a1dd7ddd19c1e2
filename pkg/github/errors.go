package github

import (
	"errors"
	"fmt"
)

var (
	errMissingField = errors.New("missing")
	errWrongType    = errors.New("unexpected type")
)

// APIRequestError is returned when GitHub answers with anything but 200 OK.
// 4xx and 5xx are not told apart; the status and raw body are kept for the caller.
type APIRequestError struct {
	StatusCode int
	Body       string
}

func (e *APIRequestError) Error() string {
	return fmt.Sprintf("GitHub API call failed: %d Response: %s", e.StatusCode, e.Body)
}

// MalformedResponseError is returned when a 200 body does not have the expected shape.
// Index is the position of the offending element, or -1 when the envelope itself is bad.
type MalformedResponseError struct {
	Index int
	Field string
	Err   error
}

func (e *MalformedResponseError) Error() string {
	switch {
	case e.Index < 0 && e.Field == "":
		return fmt.Sprintf("malformed response: %v", e.Err)
	case e.Index < 0:
		return fmt.Sprintf("malformed response: field %q: %v", e.Field, e.Err)
	default:
		return fmt.Sprintf("malformed response: item %d: field %q: %v", e.Index, e.Field, e.Err)
	}
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}

// fieldError is raised while reading one object and gets its index attached by the caller.
type fieldError struct {
	field string
	err   error
}

func (e *fieldError) Error() string {
	return fmt.Sprintf("field %q: %v", e.field, e.err)
}

// nestedField qualifies a field error raised inside a nested object, e.g. "owner.login".
func nestedField(parent string, err error) error {
	var fe *fieldError
	if errors.As(err, &fe) {
		return &fieldError{field: parent + "." + fe.field, err: fe.err}
	}
	return err
}

func malformedAt(index int, err error) error {
	var fe *fieldError
	if errors.As(err, &fe) {
		return &MalformedResponseError{Index: index, Field: fe.field, Err: fe.err}
	}
	return &MalformedResponseError{Index: index, Err: err}
}
