package catalog

import (
	"encoding/json"
	"strconv"

	"github.com/diwise/people-catalog/pkg/catalog/errors"
)

// Record is one entity of a catalog resource, as decoded from its JSON representation.
// Numbers are kept as json.Number so that their literal text survives decoding.
type Record map[string]any

func (r Record) Get(field string) (any, bool) {
	v, ok := r[field]
	return v, ok
}

// Text returns the canonical text form of a field. ok is false when the field is absent,
// null, or holds a nested value.
func (r Record) Text(field string) (string, bool) {
	v, ok := r[field]
	if !ok {
		return "", false
	}
	return Text(v)
}

func (r Record) Name() (string, error) {
	v, ok := r["name"]
	if !ok {
		return "", errors.NewKeyMissingError("name")
	}

	name, ok := Text(v)
	if !ok {
		return "", errors.NewKeyMissingError("name")
	}

	return name, nil
}

func Text(v any) (string, bool) {
	switch val := v.(type) {
	case string:
		return val, true
	case json.Number:
		return val.String(), true
	case bool:
		return strconv.FormatBool(val), true
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), true
	case int:
		return strconv.Itoa(val), true
	case int64:
		return strconv.FormatInt(val, 10), true
	}

	return "", false
}
