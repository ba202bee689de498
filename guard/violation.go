package guard

import "fmt"

// Kind classifies a guard violation.
type Kind string

const (
	// KindNil marks a nil reference where a value was required.
	KindNil Kind = "nil"
	// KindBlank marks an empty or all-whitespace string.
	KindBlank Kind = "blank"
	// KindEmptyID marks a zero-valued unique identifier.
	KindEmptyID Kind = "empty_id"
	// KindZero marks a default-valued argument.
	KindZero Kind = "zero"
	// KindOutOfRange marks a value outside its allowed range.
	KindOutOfRange Kind = "out_of_range"
	// KindTooLong marks a string exceeding its maximum length.
	KindTooLong Kind = "too_long"
	// KindInvalid marks a failed caller-supplied predicate.
	KindInvalid Kind = "invalid"
)

// Violation is the panic value raised by every guard helper. It names the
// violated rule and the offending parameter so the failure site is obvious
// from the message alone.
type Violation struct {
	Kind    Kind
	Name    string
	Message string
}

// Error implements the error interface.
func (v *Violation) Error() string {
	return fmt.Sprintf("guard: %s: argument %q %s", v.Kind, v.Name, v.Message)
}

// Recover converts a recovered panic value into a *Violation, or nil when the
// panic did not originate from a guard. Use it in the rare boundary that must
// translate guard failures into transport errors:
//
//	defer func() {
//		if v := guard.Recover(recover()); v != nil {
//			// report v
//		}
//	}()
func Recover(r any) *Violation {
	if v, ok := r.(*Violation); ok {
		return v
	}
	if r != nil {
		panic(r)
	}
	return nil
}
