package vm

import "strconv"

// Value is the closed set of runtime types.  A variable keeps the variant it
// was declared with; reassignment never changes it.
type Value interface {
	isValue()

	// Render returns the textual form used by print statements.
	Render() string
}

type (
	Str  string
	Bool bool
	Num  float64
)

func (_ Str) isValue()  {}
func (_ Bool) isValue() {}
func (_ Num) isValue()  {}

func (v Str) Render() string  { return string(v) }
func (v Bool) Render() string { return strconv.FormatBool(bool(v)) }
func (v Num) Render() string  { return strconv.FormatFloat(float64(v), 'f', -1, 64) }

// Environment is the single flat variable scope for a run.  It is owned by
// the caller and survives across Exec calls; the evaluator only ever adds or
// overwrites bindings.
type Environment map[string]Value
