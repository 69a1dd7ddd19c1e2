package github

import (
	"bytes"
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var jsonNull = []byte("null")

// object is one JSON object from a response, read field by field so that
// absent, null and wrong-typed values can be told apart.
type object map[string]jsoniter.RawMessage

func (o object) raw(field string) (jsoniter.RawMessage, error) {
	v, ok := o[field]
	if !ok {
		return nil, &fieldError{field: field, err: errMissingField}
	}
	return v, nil
}

func (o object) str(field string) (string, error) {
	v, err := o.raw(field)
	if err != nil {
		return "", err
	}
	if isNull(v) {
		return "", &fieldError{field: field, err: errWrongType}
	}
	var s string
	if err := json.Unmarshal(v, &s); err != nil {
		return "", &fieldError{field: field, err: errWrongType}
	}
	return s, nil
}

func (o object) count(field string) (int, error) {
	v, err := o.raw(field)
	if err != nil {
		return 0, err
	}
	if isNull(v) {
		return 0, &fieldError{field: field, err: errWrongType}
	}
	var n int
	if err := json.Unmarshal(v, &n); err != nil {
		return 0, &fieldError{field: field, err: errWrongType}
	}
	if n < 0 {
		return 0, &fieldError{field: field, err: fmt.Errorf("negative count %d", n)}
	}
	return n, nil
}

func (o object) nested(field string) (object, error) {
	v, err := o.raw(field)
	if err != nil {
		return nil, err
	}
	if isNull(v) {
		return nil, &fieldError{field: field, err: errWrongType}
	}
	var inner object
	if err := json.Unmarshal(v, &inner); err != nil {
		return nil, &fieldError{field: field, err: errWrongType}
	}
	return inner, nil
}

func isNull(v []byte) bool {
	return bytes.Equal(bytes.TrimSpace(v), jsonNull)
}

// decodeObject parses a body that must be a single JSON object.
func decodeObject(body []byte) (object, error) {
	if isNull(body) {
		return nil, &MalformedResponseError{Index: -1, Err: fmt.Errorf("expected object, got null")}
	}
	var o object
	if err := json.Unmarshal(body, &o); err != nil {
		return nil, &MalformedResponseError{Index: -1, Err: fmt.Errorf("expected object: %w", err)}
	}
	return o, nil
}

// decodeArray parses a body, or the named envelope field, that must be a JSON array of objects.
func decodeArray(raw []byte, field string) ([]object, error) {
	if isNull(raw) {
		return nil, &MalformedResponseError{Index: -1, Field: field, Err: fmt.Errorf("expected array, got null")}
	}
	var elems []jsoniter.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return nil, &MalformedResponseError{Index: -1, Field: field, Err: fmt.Errorf("expected array: %w", err)}
	}

	objs := make([]object, 0, len(elems))
	for i, e := range elems {
		if isNull(e) {
			return nil, malformedAt(i, fmt.Errorf("expected object, got null"))
		}
		var o object
		if err := json.Unmarshal(e, &o); err != nil {
			return nil, malformedAt(i, fmt.Errorf("expected object: %w", err))
		}
		objs = append(objs, o)
	}
	return objs, nil
}
