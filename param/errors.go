// SPDX-License-Identifier: MIT
// Package: lvgrid/param
//
// errors.go — sentinel errors for the param package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed, plus ContractError
//     which always unwraps to ErrBrokenContract.
//   • Callers branch with errors.Is(err, ErrX); never on message text.
//   • Constructors attach context with paramErrorf / %w, prefixed by the
//     canonical method name (MethodNewProduct, ...).
//   • Caller input never causes a panic, with two exceptions: a
//     *ContractError raised when a component Sequence breaks its contract,
//     and Rand on a nil *Values, which has no value to return.

package param

import (
	"errors"
	"fmt"
)

// ErrEmptyDomain indicates a parameter with no values: an empty leaf, or a
// component reporting Len() < 1 to a composite constructor.
var ErrEmptyDomain = errors.New("param: empty domain")

// ErrNilParam indicates a nil component was passed to a constructor.
var ErrNilParam = errors.New("param: nil parameter")

// ErrNoComponents indicates NewProductN was called without components.
var ErrNoComponents = errors.New("param: no components")

// ErrCardinalityOverflow indicates the product of component cardinalities
// does not fit into an int.
var ErrCardinalityOverflow = errors.New("param: cardinality overflows int")

// ErrIndexOutOfRange indicates At(i) was called with i outside [0, Len()).
var ErrIndexOutOfRange = errors.New("param: index out of range")

// ErrNotIndexed indicates At(i) was called on a composite whose components do
// not all implement Indexed.
var ErrNotIndexed = errors.New("param: component does not support indexed access")

// ErrBadCount indicates a negative draw count.
var ErrBadCount = errors.New("param: count must be non-negative")

// ErrNilFunc indicates a nil mapping function.
var ErrNilFunc = errors.New("param: nil function")

// ErrBrokenContract is the root of every *ContractError. A correct caller can
// never observe it: it fires only when a component Sequence yields no value
// where its Param guarantees one (a lying Len, or a Reset that does not
// restore the first element).
var ErrBrokenContract = errors.New("param: component broke the sequence contract")

// Phase names reported by ContractError.
const (
	PhaseIter  = "iter"        // component Iter() returned a nil Sequence
	PhaseFirst = "first value" // first pull from a fresh component sequence
	PhaseCarry = "carry"       // re-pull after rewinding during a carry
	PhaseReset = "reset"       // re-pull after rewinding in Reset
)

// ContractError is the panic value raised when a component sequence fails to
// produce a value it is guaranteed to have. Enumeration is aborted rather than
// continued with stale or wrapped-around values.
type ContractError struct {
	// Position of the offending component; 0 is the most significant.
	Position int
	// Phase is one of PhaseIter, PhaseFirst, PhaseCarry, PhaseReset.
	Phase string
}

// Error implements error.
func (e *ContractError) Error() string {
	return fmt.Sprintf("param: component %d yielded no value during %s", e.Position, e.Phase)
}

// Unwrap exposes ErrBrokenContract for errors.Is.
func (e *ContractError) Unwrap() error {
	return ErrBrokenContract
}

// paramErrorf prefixes a formatted message with the method name and wraps
// the sentinel so errors.Is keeps working.
// Result: "<Method>: <message>: <sentinel>".
func paramErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}

// wrapf is paramErrorf without a detail message.
func wrapf(method string, sentinel error) error {
	return fmt.Errorf("%s: %w", method, sentinel)
}
