// Package guard provides precondition helpers for method and constructor
// boundaries. Each helper returns the validated value unchanged or panics
// with a *Violation naming the offending parameter.
//
// Guard failures are programmer errors, not business-rule failures; expected
// failures belong on the result channel instead.
package guard

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Number covers the numeric types accepted by NotNegative.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// Ordered covers the types accepted by InRange.
type Ordered interface {
	Number | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~string
}

// NotNil ensures v is a non-nil pointer.
func NotNil[T any](v *T, name string) *T {
	if v == nil {
		fail(KindNil, name, "must not be nil")
	}
	return v
}

// NotBlank ensures v contains at least one non-whitespace character.
func NotBlank(v string, name string) string {
	if strings.TrimSpace(v) == "" {
		fail(KindBlank, name, "must not be empty or whitespace")
	}
	return v
}

// NotEmptyID ensures id is not the zero UUID.
func NotEmptyID(id uuid.UUID, name string) uuid.UUID {
	if id == uuid.Nil {
		fail(KindEmptyID, name, "must not be the empty identifier")
	}
	return id
}

// NotZero ensures v is not the zero value of its type.
func NotZero[T comparable](v T, name string) T {
	var zero T
	if v == zero {
		fail(KindZero, name, "must not be the zero value")
	}
	return v
}

// InRange ensures min <= v <= max. Both bounds are inclusive.
func InRange[T Ordered](v, min, max T, name string) T {
	if v < min || v > max {
		fail(KindOutOfRange, name, "must be within the allowed range")
	}
	return v
}

// NotNegative ensures v >= 0.
func NotNegative[T Number](v T, name string) T {
	if v < 0 {
		fail(KindOutOfRange, name, "must not be negative")
	}
	return v
}

// MaxLength ensures v is at most max characters long. Length is counted in
// runes, not bytes, so multibyte text is not penalized.
func MaxLength(v string, max int, name string) string {
	if utf8.RuneCountInString(v) > max {
		fail(KindTooLong, name, "exceeds maximum length")
	}
	return v
}

// Requires ensures an arbitrary condition holds, panicking with the supplied
// message when it does not.
func Requires(condition bool, name, message string) {
	if !condition {
		fail(KindInvalid, name, message)
	}
}

func fail(kind Kind, name, message string) {
	panic(&Violation{Kind: kind, Name: name, Message: message})
}
