package domain

import (
	"encoding/json"
	"strconv"
)

// Payload is a decoded JSON request body.
//
// Field lookups follow truthiness rules: null, false, 0 and "" count as absent,
// exactly like a missing key. Truthy scalars are rendered as text.
type Payload map[string]any

// Value returns the textual value of field and whether it is present (truthy).
// Objects and arrays cannot be stored in a text column and yield an
// ErrInvalidFieldType validation error.
func (p Payload) Value(field string) (string, bool, error) {
	raw, ok := p[field]
	if !ok || raw == nil {
		return "", false, nil
	}

	switch v := raw.(type) {
	case string:
		return v, v != "", nil
	case bool:
		if !v {
			return "", false, nil
		}
		return strconv.FormatBool(v), true, nil
	case float64:
		if v == 0 {
			return "", false, nil
		}
		return strconv.FormatFloat(v, 'f', -1, 64), true, nil
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return "", false, NewValidationError(field, "is not a valid number", ErrInvalidFieldType)
		}
		if f == 0 {
			return "", false, nil
		}
		return v.String(), true, nil
	default:
		return "", false, NewValidationError(field, "must be a text value", ErrInvalidFieldType)
	}
}

// Has reports whether field is present and truthy. Type errors count as absent.
func (p Payload) Has(field string) bool {
	_, ok, err := p.Value(field)
	return ok && err == nil
}

// merge returns the payload value for field when truthy, otherwise current.
func (p Payload) merge(field, current string) (string, error) {
	v, ok, err := p.Value(field)
	if err != nil {
		return "", err
	}
	if !ok {
		return current, nil
	}
	return v, nil
}
