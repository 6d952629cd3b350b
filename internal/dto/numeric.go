package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Numeric accepts a JSON number or a numeric string, as HTML forms post
// either. null and "" leave it unset.
type Numeric struct {
	set bool
	val float64
}

// NumericOf returns a set value.
func NumericOf(v float64) Numeric {
	return Numeric{set: true, val: v}
}

// UnmarshalJSON implements json.Unmarshaler.
func (n *Numeric) UnmarshalJSON(data []byte) error {
	*n = Numeric{}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			return nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return fmt.Errorf("%q is not a number", s)
		}
		*n = NumericOf(f)
		return nil
	}
	var f float64
	if err := json.Unmarshal(trimmed, &f); err != nil {
		return err
	}
	*n = NumericOf(f)
	return nil
}

// MarshalJSON implements json.Marshaler.
func (n Numeric) MarshalJSON() ([]byte, error) {
	if !n.set {
		return []byte("null"), nil
	}
	return json.Marshal(n.val)
}

// Present reports whether a number was supplied.
func (n Numeric) Present() bool { return n.set }

// Float returns the value and whether it was supplied.
func (n Numeric) Float() (float64, bool) { return n.val, n.set }

// FloatOr returns the value or fallback when unset.
func (n Numeric) FloatOr(fallback float64) float64 {
	if !n.set {
		return fallback
	}
	return n.val
}

// Int64 returns the value as a whole number. It fails when the value has a
// fractional part or does not fit in int32, the width of the id columns.
func (n Numeric) Int64() (int64, bool, error) {
	if !n.set {
		return 0, false, nil
	}
	if n.val != math.Trunc(n.val) || n.val > math.MaxInt32 || n.val < math.MinInt32 {
		return 0, true, fmt.Errorf("%v is not a whole number", n.val)
	}
	return int64(n.val), true, nil
}
