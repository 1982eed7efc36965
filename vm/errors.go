package vm

import "fmt"

type errKind int

const (
	kindSyntax errKind = iota
	kindIncomplete
	kindInvalidExpression
	kindInvalidValue
	kindInvalidOperator
	kindIncompatibleType
	kindVanishValue
	kindInvalidRange
	kindInvalidTarget
	kindUnknownType
	kindUnknownToken
)

func (k errKind) String() string {
	switch k {
	case kindSyntax:
		return "Syntax"
	case kindIncomplete:
		return "Incomplete"
	case kindInvalidExpression:
		return "InvalidExpression"
	case kindInvalidValue:
		return "InvalidValue"
	case kindInvalidOperator:
		return "InvalidOperator"
	case kindIncompatibleType:
		return "IncompatibleType"
	case kindVanishValue:
		return "VanishValue"
	case kindInvalidRange:
		return "InvalidRange"
	case kindInvalidTarget:
		return "InvalidTarget"
	case kindUnknownType:
		return "UnknownType"
	case kindUnknownToken:
		return "UnknownToken"
	}

	panic("unreachable")
}

// scriptError is a single in-band diagnostic.  Error() is exactly the line
// appended to the output buffer, minus the trailing newline.
type scriptError struct {
	kind errKind
	msg  string
}

func (e scriptError) Error() string {
	return fmt.Sprintf("[ERROR: %s]: %s", e.kind, e.msg)
}

func errf(k errKind, format string, args ...any) scriptError {
	return scriptError{k, fmt.Sprintf(format, args...)}
}
