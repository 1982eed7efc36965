package vm

// Surface syntax of the language.
const (
	kwDeclare   = "WA"
	kwReassign  = "CO"
	kwPrint     = "BAU"
	kwLoop      = "PONDE"
	kwLoopCount = "GURUGURU"
	kwLoopEnd   = "OSUWARI"
	kwIf        = "MOSHI"
	kwElif      = "MATA"
	kwElse      = "HOKA"
	kwClass     = "KENNEL"
	kwClassEnd  = "KENNELEND"
	kwEnd       = "OYASUMI"

	// When a program's first token is the flag, class markers print
	// diagnostics.  Otherwise they are silent no-ops.
	kwFlag = "CHIHUAHUA"

	tyText = "KIRA"
	tyBool = "BAULEAN"
	tyNum  = "MOE"

	litTrue  = "FLUFFY"
	litFalse = "FUZZY"

	// Placeholder substituted with the iteration integer inside range-loop
	// expression spans.
	counterWord = "counter"
)

func isKeyword(s string) bool {
	switch s {
	case kwDeclare, kwReassign, kwPrint, kwLoop, kwLoopCount, kwLoopEnd,
		kwIf, kwElif, kwElse, kwClass, kwClassEnd, kwEnd, kwFlag,
		tyText, tyBool, tyNum, litTrue, litFalse:
		return true
	}
	return false
}
