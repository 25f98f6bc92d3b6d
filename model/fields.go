// file: model/fields.go

package model

import (
	"math"
	"strconv"
	"strings"
	"time"
)

const dateLayout = "02.01.2006"

// timeNow is swapped out in tests that exercise time-dependent rules.
var timeNow = time.Now

// ValidationError reports a single violated field rule. The text is what
// ends up in the "error" member of an invalid-request response.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Field + " " + e.Reason
}

func newFieldError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// checkFunc validates a non-null raw value (as decoded from JSON) and
// returns its normalized form, or a reason why it is invalid. Derived
// checks call their base check first and then add a stricter rule.
type checkFunc func(raw interface{}, nullable bool) (interface{}, string)

// field is one declarative constraint attached to a request attribute.
type field struct {
	name     string
	required bool
	nullable bool
	check    checkFunc
}

// bind applies the field's rules to the raw value taken from the request
// body. present is false when the key was absent; a JSON null is treated
// the same way.
func (f field) bind(raw interface{}, present bool) (interface{}, error) {
	if !present || raw == nil {
		if f.required {
			return nil, newFieldError(f.name, "is required")
		}
		return nil, nil
	}
	v, reason := f.check(raw, f.nullable)
	if reason != "" {
		return nil, newFieldError(f.name, reason)
	}
	return v, nil
}

func checkChar(raw interface{}, nullable bool) (interface{}, string) {
	s, ok := raw.(string)
	if !ok {
		return nil, "must be a string"
	}
	if !nullable && s == "" {
		return nil, "cannot be empty"
	}
	return s, ""
}

func checkEmail(raw interface{}, nullable bool) (interface{}, string) {
	v, reason := checkChar(raw, nullable)
	if reason != "" {
		return nil, reason
	}
	s := v.(string)
	if s != "" && !strings.Contains(s, "@") {
		return nil, "must contain @"
	}
	return s, ""
}

// checkPhone accepts a digits-only string or an integral number and
// normalizes it to an int64. The number must be 11 digits long and start
// with 7.
func checkPhone(raw interface{}, _ bool) (interface{}, string) {
	var digits string
	switch v := raw.(type) {
	case string:
		if v == "" || !isDigits(v) {
			return nil, "must contain digits only"
		}
		digits = v
	case float64:
		if v != math.Trunc(v) || v < 0 {
			return nil, "must be an integer or a string of digits"
		}
		digits = strconv.FormatInt(int64(v), 10)
	case int:
		digits = strconv.Itoa(v)
	case int64:
		digits = strconv.FormatInt(v, 10)
	default:
		return nil, "must be an integer or a string of digits"
	}
	if len(digits) != 11 || digits[0] != '7' {
		return nil, "must be 11 digits starting with 7"
	}
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return nil, "must be 11 digits starting with 7"
	}
	return n, ""
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func checkDate(raw interface{}, _ bool) (interface{}, string) {
	s, ok := raw.(string)
	if !ok {
		return nil, "must be a string"
	}
	if _, err := time.Parse(dateLayout, s); err != nil {
		return nil, "must be a date in DD.MM.YYYY format"
	}
	return s, ""
}

// checkBirthday refines checkDate with an age bound: the date must not lie
// in the future and must be within the last 70 years.
func checkBirthday(raw interface{}, nullable bool) (interface{}, string) {
	v, reason := checkDate(raw, nullable)
	if reason != "" {
		return nil, reason
	}
	d, _ := time.Parse(dateLayout, v.(string))
	now := timeNow()
	if d.After(now) {
		return nil, "must not be in the future"
	}
	if d.Before(now.AddDate(-70, 0, 0)) {
		return nil, "must be within the last 70 years"
	}
	return d, ""
}

func checkGender(raw interface{}, _ bool) (interface{}, string) {
	n, ok := asInt(raw)
	if !ok || n < 0 || n > 2 {
		return nil, "must be 0, 1 or 2"
	}
	return int(n), ""
}

func checkClientIDs(raw interface{}, _ bool) (interface{}, string) {
	list, ok := raw.([]interface{})
	if !ok {
		return nil, "must be a list"
	}
	if len(list) == 0 {
		return nil, "cannot be empty"
	}
	ids := make([]int64, 0, len(list))
	for _, item := range list {
		n, ok := asInt(item)
		if !ok {
			return nil, "must contain integers only"
		}
		ids = append(ids, n)
	}
	return ids, ""
}

func checkArguments(raw interface{}, _ bool) (interface{}, string) {
	m, ok := raw.(map[string]interface{})
	if !ok {
		return nil, "must be an object"
	}
	return m, ""
}

// asInt unwraps the integer representations a decoded JSON value (or a
// test fixture) can arrive in. JSON numbers decode as float64, so integral
// floats are accepted.
func asInt(raw interface{}) (int64, bool) {
	switch v := raw.(type) {
	case float64:
		if v != math.Trunc(v) {
			return 0, false
		}
		return int64(v), true
	case int:
		return int64(v), true
	case int64:
		return v, true
	default:
		return 0, false
	}
}
