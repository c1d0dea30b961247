package models

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// FlexNumber is a number that also accepts numeric strings, booleans and
// null. Values that cannot be read as a finite number decode without error
// and report Valid == false.
type FlexNumber struct {
	Value float64
	Valid bool
}

// NewFlexNumber returns a valid FlexNumber holding v.
func NewFlexNumber(v float64) FlexNumber {
	return FlexNumber{Value: v, Valid: true}
}

// UnmarshalJSON implements [json.Unmarshaler].
func (n *FlexNumber) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	*n = FlexNumber{}
	switch value := v.(type) {
	case float64:
		*n = NewFlexNumber(value)
	case string:
		s := strings.TrimSpace(value)
		if s == "" {
			*n = NewFlexNumber(0)
			return nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err == nil && !math.IsInf(f, 0) && !math.IsNaN(f) {
			*n = NewFlexNumber(f)
		}
	case bool:
		if value {
			*n = NewFlexNumber(1)
		} else {
			*n = NewFlexNumber(0)
		}
	case nil:
		*n = NewFlexNumber(0)
	}

	return nil
}

// MarshalJSON implements [json.Marshaler].
func (n FlexNumber) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}

// FlexString is a string that also accepts numbers and booleans. Other JSON
// values decode to the empty string.
type FlexString string

// UnmarshalJSON implements [json.Unmarshaler].
func (s *FlexString) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case string:
		*s = FlexString(value)
	case float64:
		*s = FlexString(strconv.FormatFloat(value, 'f', -1, 64))
	case bool:
		*s = FlexString(strconv.FormatBool(value))
	default:
		*s = ""
	}

	return nil
}
