package domain

import (
	"math"
	"strconv"
	"strings"
)

// RawItem is one decoded search-result item before normalisation.
// It wraps the untyped JSON object and offers typed field probing so the
// normaliser can express fallback chains without reflection.
type RawItem map[string]any

// GetString returns the named field as a trimmed, non-empty string.
// Numeric and boolean scalars are stringified. Object- and array-typed
// values are reported absent rather than stringified, so raw JSON
// structure never leaks into a string field.
func (r RawItem) GetString(name string) (string, bool) {
	v, ok := r[name]
	if !ok || v == nil {
		return "", false
	}
	switch t := v.(type) {
	case string:
		s := strings.TrimSpace(t)
		return s, s != ""
	case float64:
		// encoding/json decodes all JSON numbers as float64.
		if t == math.Trunc(t) && !math.IsInf(t, 0) {
			return strconv.FormatInt(int64(t), 10), true
		}
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(t), true
	default:
		return "", false
	}
}

// GetObject returns the named field as a nested RawItem.
func (r RawItem) GetObject(name string) (RawItem, bool) {
	v, ok := r[name]
	if !ok {
		return nil, false
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, false
	}
	return RawItem(obj), true
}

// GetArray returns the named field as a slice of untyped values.
func (r RawItem) GetArray(name string) ([]any, bool) {
	v, ok := r[name]
	if !ok {
		return nil, false
	}
	arr, ok := v.([]any)
	if !ok {
		return nil, false
	}
	return arr, true
}

// GetInt returns the named field as an int, accepting numeric scalars
// and numeric strings.
func (r RawItem) GetInt(name string) (int, bool) {
	v, ok := r[name]
	if !ok || v == nil {
		return 0, false
	}
	switch t := v.(type) {
	case float64:
		return int(t), true
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(t))
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}
