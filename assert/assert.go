// Package assert contains test assertion helpers.
package assert

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// Testing is an interface that includes the methods used from *testing.T.
type Testing interface {
	Helper()
	Error(args ...any)
	FailNow()
}

// Fail fails the test with a message and optional format arguments.
func Fail(t Testing, message string, msgAndArgs ...any) {
	t.Helper()
	if len(msgAndArgs) > 0 {
		var builder strings.Builder
		builder.WriteString(message)
		builder.WriteByte('\n')
		builder.WriteString(fmt.Sprintf(msgAndArgs[0].(string), msgAndArgs[1:]...))
		message = builder.String()
	}
	t.Error(message)
	t.FailNow()
}

// Equal asserts that two objects are equal. Numeric values of different
// types compare equal if they convert to the same value.
//
// Example:
//
//	assert.Equal(t, 42, result)
func Equal(t Testing, expected, actual any, msgAndArgs ...any) {
	t.Helper()
	if equal(expected, actual) {
		return
	}

	msg := fmt.Sprintf("Not equal: \nexpected: %v\nactual  : %v", expected, actual)
	Fail(t, msg, msgAndArgs...)
}

// NotEqual asserts that two objects are not equal.
func NotEqual(t Testing, expected, actual any, msgAndArgs ...any) {
	t.Helper()
	if !equal(expected, actual) {
		return
	}

	msg := fmt.Sprintf("Equal: \nexpected: %v\nactual  : %v", expected, actual)
	Fail(t, msg, msgAndArgs...)
}

// NoError asserts that a function returned no error.
func NoError(t Testing, err error, msgAndArgs ...any) {
	t.Helper()
	if err == nil {
		return
	}

	msg := fmt.Sprintf("Unexpected error:\n%+v", err)
	Fail(t, msg, msgAndArgs...)
}

// Error asserts that a function returned an error.
func Error(t Testing, err error, msgAndArgs ...any) {
	t.Helper()
	if err != nil {
		return
	}

	Fail(t, "Expected an error", msgAndArgs...)
}

// ErrorIs asserts that a function returned an error that matches the
// specified error. Uses errors.Is for comparison, which supports error
// wrapping.
func ErrorIs(t Testing, err, expectedError error, msgAndArgs ...any) {
	t.Helper()
	if err == nil {
		msg := fmt.Sprintf("Error not returned: \nexpected: %v\nactual  : nil", expectedError)
		Fail(t, msg, msgAndArgs...)
		return
	}

	if errors.Is(err, expectedError) {
		return
	}

	msg := fmt.Sprintf("Error not equal: \nexpected: %v\nactual  : %v", expectedError, err)
	Fail(t, msg, msgAndArgs...)
}

// True asserts that the specified value is true.
func True(t Testing, value bool, msgAndArgs ...any) {
	t.Helper()
	if value {
		return
	}

	Fail(t, "Expected value to be true", msgAndArgs...)
}

// False asserts that the specified value is false.
func False(t Testing, value bool, msgAndArgs ...any) {
	t.Helper()
	if !value {
		return
	}

	Fail(t, "Expected value to be false", msgAndArgs...)
}

func equal(expected, actual any) bool {
	if expected == nil || actual == nil {
		return isNil(expected) == isNil(actual)
	}

	if reflect.TypeOf(expected).Comparable() && reflect.TypeOf(actual).Comparable() {
		if expected == actual {
			return true
		}
	}

	if reflect.DeepEqual(expected, actual) {
		return true
	}

	// Try type conversion as fallback, it allows comparing numeric values
	// of different types.
	actualType := reflect.TypeOf(actual)
	if actualType == nil {
		return false
	}
	expectedValue := reflect.ValueOf(expected)
	if expectedValue.IsValid() && expectedValue.Type().ConvertibleTo(actualType) {
		return reflect.DeepEqual(expectedValue.Convert(actualType).Interface(), actual)
	}

	return false
}

func isNil(value any) bool {
	if value == nil {
		return true
	}

	switch reflect.TypeOf(value).Kind() {
	case reflect.Ptr, reflect.Map, reflect.Chan, reflect.Slice, reflect.Interface, reflect.Func:
		return reflect.ValueOf(value).IsNil()
	default:
		return false
	}
}
