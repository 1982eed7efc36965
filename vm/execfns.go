package vm

import (
	"fmt"
	"strconv"

	"git.sr.ht/~mango/baux/lexer"
	"git.sr.ht/~mango/baux/pkg/stringsx"
)

// Each execFoo consumes one statement starting at pc and returns the program
// counter positioned after it.  A failed statement reports one diagnostic and
// is skipped in full.

func (m *machine) execDeclare(pc, end int) int {
	if pc+4 >= end {
		if m.executing() {
			m.report(errf(kindIncomplete, "Incomplete declaration"))
		}
		return end
	}
	typ, name, eq, init := m.toks[pc+1], m.toks[pc+2], m.toks[pc+3], m.toks[pc+4]
	if !m.executing() {
		return pc + 5
	}

	if name.Kind != lexer.TokWord || isKeyword(name.Val) {
		m.report(errf(kindInvalidTarget, "Cannot declare %s", name))
		return pc + 5
	}
	if eq.Kind != lexer.TokAssign {
		m.report(errf(kindSyntax, "Expected '=' after variable name"))
		return pc + 5
	}

	var v Value
	var err error
	switch {
	case typ.Kind != lexer.TokWord:
		err = errf(kindUnknownType, "Unknown type: %s", typ)
	case typ.Val == tyText:
		v, err = m.textValue(init,
			errf(kindIncompatibleType, "KIRA does not support a nonstring"))
	case typ.Val == tyBool:
		v, err = m.boolValue(init,
			errf(kindIncompatibleType, "BAULEAN requires FLUFFY/FUZZY or a declared BAULEAN-type variable"))
	case typ.Val == tyNum:
		v, err = m.numValue(init,
			errf(kindInvalidValue, "Invalid number/arithmetic expression"))
	default:
		err = errf(kindUnknownType, "Unknown type: %s", typ.Val)
	}
	if err != nil {
		m.report(err)
		return pc + 5
	}

	m.env[name.Val] = v
	return pc + 5
}

func (m *machine) execReassign(pc, end int) int {
	if pc+3 >= end {
		if m.executing() {
			m.report(errf(kindIncomplete, "Incomplete reassignment"))
		}
		return end
	}
	name, eq, val := m.toks[pc+1], m.toks[pc+2], m.toks[pc+3]
	if !m.executing() {
		return pc + 4
	}

	if name.Kind != lexer.TokWord {
		m.report(errf(kindInvalidTarget, "Cannot assign to %s", name))
		return pc + 4
	}
	if eq.Kind != lexer.TokAssign {
		m.report(errf(kindSyntax, "Expected '=' in reassignment"))
		return pc + 4
	}

	// The required variant is fixed by the existing binding.
	var v Value
	var err error
	switch m.env[name.Val].(type) {
	case Str:
		v, err = m.textValue(val,
			errf(kindIncompatibleType, "CO requires matching type (KIRA)"))
	case Bool:
		v, err = m.boolValue(val,
			errf(kindIncompatibleType, "CO requires matching type (BAULEAN)"))
	case Num:
		v, err = m.numValue(val,
			errf(kindIncompatibleType, "CO requires matching type (MOE)"))
	default:
		err = errf(kindVanishValue, "Variable could not be found in scope: %s", name.Val)
	}
	if err != nil {
		m.report(err)
		return pc + 4
	}

	m.env[name.Val] = v
	return pc + 4
}

func (m *machine) execPrint(pc, end int) int {
	if pc+1 >= end {
		if m.executing() {
			m.report(errf(kindIncomplete, "Incomplete print statement"))
		}
		return end
	}
	t := m.toks[pc+1]
	if !m.executing() {
		return pc + 2
	}

	switch t.Kind {
	case lexer.TokString:
		fmt.Fprintf(m.out, "%s\n", t.Val)
	case lexer.TokWord:
		if v, ok := m.env[t.Val]; ok {
			fmt.Fprintf(m.out, "%s\n", v.Render())
		} else {
			m.report(errf(kindVanishValue, "Variable couldn't be found: %s", t.Val))
		}
	default:
		m.report(errf(kindInvalidValue, "Cannot print %s", t))
	}
	return pc + 2
}

func (m *machine) execRangeLoop(pc, end int) int {
	if pc+4 >= end {
		if m.executing() {
			m.report(errf(kindIncomplete, "Incomplete loop"))
		}
		return end
	}

	name, rng, open := m.toks[pc+1], m.toks[pc+2], m.toks[pc+3]
	if open.Kind != lexer.TokBraceOpen {
		if m.executing() {
			m.report(errf(kindSyntax, "Expected '{' to begin the loop"))
		}
		return pc + 4
	}

	bodyStart := pc + 4
	bodyEnd := m.matchBrace(bodyStart, end)
	if bodyEnd == -1 {
		if m.executing() {
			m.report(errf(kindSyntax, "Could not find closing '}' for loop"))
		}
		return end
	}
	if !m.executing() {
		return bodyEnd + 1
	}

	bounds := stringsx.SplitMulti(rng.Val, []string{".."})
	if rng.Kind != lexer.TokWord || len(bounds) != 2 {
		m.report(errf(kindSyntax, "Invalid range. Expected 'startInt..endInt'"))
		return bodyEnd + 1
	}
	start, err := strconv.ParseFloat(bounds[0], 64)
	if err != nil {
		m.report(errf(kindInvalidRange, "Start value must be an integer"))
		return bodyEnd + 1
	}
	stop, err := strconv.ParseFloat(bounds[1], 64)
	if err != nil {
		m.report(errf(kindInvalidRange, "End value must be an integer"))
		return bodyEnd + 1
	}
	if name.Kind != lexer.TokWord || isKeyword(name.Val) {
		m.report(errf(kindInvalidTarget, "Cannot bind loop variable %s", name))
		return bodyEnd + 1
	}

	// Both ends inclusive.  A reversed range runs zero iterations; an
	// enormous one runs for a very long time.  Neither is diagnosed.
	outer := m.counter
	for i := int64(start); i <= int64(stop) && !m.done; i++ {
		m.env[name.Val] = Num(float64(i))
		m.counter = strconv.FormatInt(i, 10)
		m.runRange(bodyStart, bodyEnd)
	}
	m.counter = outer

	return bodyEnd + 1
}

func (m *machine) execCountLoop(pc, end int) int {
	if pc+2 >= end {
		if m.executing() {
			m.report(errf(kindIncomplete, "Incomplete loop"))
		}
		return end
	}

	bodyStart := pc + 2
	bodyEnd := m.matchLoopEnd(bodyStart, end)
	if bodyEnd == -1 {
		if m.executing() {
			m.report(errf(kindSyntax, "Could not find OSUWARI to end the loop"))
		}
		return end
	}
	if !m.executing() {
		return bodyEnd + 1
	}

	count, err := m.loopCount(m.toks[pc+1])
	if err != nil {
		m.report(err)
		return bodyEnd + 1
	}
	for i := int64(0); i < count && !m.done; i++ {
		m.runRange(bodyStart, bodyEnd)
	}
	return bodyEnd + 1
}

// execChainOpen handles both the chain-opening condition and the else-if
// form, which replaces the top chain level instead of nesting a new one.
// Conditional statements are processed even when execution is suppressed;
// that is what makes the top-only gating observable.
func (m *machine) execChainOpen(pc, end int, chained bool) int {
	kw := m.toks[pc].Val
	if pc+1 >= end {
		m.report(errf(kindIncomplete, "Incomplete %s condition", kw))
		return end
	}

	prevTaken := false
	if chained {
		c := m.conds.Pop()
		if c == nil {
			m.report(errf(kindSyntax, "MATA without an open MOSHI chain"))
			return pc + 2
		}
		prevTaken = c.taken
	}

	on, err := m.evalCondition(m.toks[pc+1], kw)
	if err != nil {
		// Disable the branch and poison the chain so no later branch
		// of it runs either.
		m.report(err)
		m.conds.Push(condition{on: false, taken: true})
		return pc + 2
	}

	on = on && !prevTaken
	m.conds.Push(condition{on: on, taken: prevTaken || on})
	return pc + 2
}

func (m *machine) execChainElse(pc int) int {
	c := m.conds.Pop()
	if c == nil {
		m.report(errf(kindSyntax, "HOKA without an open MOSHI chain"))
		return pc + 1
	}
	m.conds.Push(condition{on: !c.taken, taken: true})
	return pc + 1
}

func (m *machine) execClass(pc, end int) int {
	if pc+1 >= end {
		if m.executing() {
			m.report(errf(kindIncomplete, "Incomplete class declaration"))
		}
		return end
	}
	if m.classes && m.executing() {
		fmt.Fprintf(m.out, "Class declared: %s\n", m.toks[pc+1].Val)
	}
	return pc + 2
}

// textValue, boolValue and numValue resolve an initializer token to one
// variant.  mismatch is the caller's diagnostic for a token that cannot serve
// the variant; declare and reassign phrase theirs differently.

func (m *machine) textValue(t lexer.Token, mismatch error) (Value, error) {
	if t.Kind == lexer.TokString {
		return Str(t.Val), nil
	}
	if t.Kind == lexer.TokWord {
		if s, ok := m.env[t.Val].(Str); ok {
			return s, nil
		}
	}
	return nil, mismatch
}

func (m *machine) boolValue(t lexer.Token, mismatch error) (Value, error) {
	if t.Kind == lexer.TokWord {
		switch t.Val {
		case litTrue:
			return Bool(true), nil
		case litFalse:
			return Bool(false), nil
		}
		if b, ok := m.env[t.Val].(Bool); ok {
			return b, nil
		}
	}
	return nil, mismatch
}

func (m *machine) numValue(t lexer.Token, mismatch error) (Value, error) {
	switch t.Kind {
	case lexer.TokExpr:
		v, err := m.evalExprToken(t.Val)
		if err != nil {
			return nil, err
		}
		n, ok := v.(Num)
		if !ok {
			return nil, errf(kindIncompatibleType, "MOE requires a numeric expression")
		}
		return n, nil
	case lexer.TokWord:
		if n, err := strconv.ParseFloat(t.Val, 64); err == nil {
			return Num(n), nil
		}
		if n, ok := m.env[t.Val].(Num); ok {
			return n, nil
		}
	}
	return nil, mismatch
}

// evalCondition resolves a boolean-producing condition operand: a boolean
// literal, a bound BAULEAN variable, or a comparison expression span.
func (m *machine) evalCondition(t lexer.Token, kw string) (bool, error) {
	switch t.Kind {
	case lexer.TokExpr:
		v, err := m.evalExprToken(t.Val)
		if err != nil {
			return false, err
		}
		b, ok := v.(Bool)
		if !ok {
			return false, errf(kindIncompatibleType,
				"%s requires a comparison expression", kw)
		}
		return bool(b), nil
	case lexer.TokWord:
		switch t.Val {
		case litTrue:
			return true, nil
		case litFalse:
			return false, nil
		}
		if b, ok := m.env[t.Val].(Bool); ok {
			return bool(b), nil
		}
		if _, ok := m.env[t.Val]; ok {
			return false, errf(kindIncompatibleType,
				"%s requires a BAULEAN condition", kw)
		}
		return false, errf(kindVanishValue,
			"Variable could not be found in scope: %s", t.Val)
	}
	return false, errf(kindIncompatibleType, "%s requires a BAULEAN condition", kw)
}

func (m *machine) loopCount(t lexer.Token) (int64, error) {
	if t.Kind != lexer.TokWord {
		return 0, errf(kindInvalidValue, "Invalid loop count %s", t)
	}
	switch t.Val {
	case litTrue:
		return 1, nil
	case litFalse:
		return 0, nil
	}
	if n, err := strconv.ParseFloat(t.Val, 64); err == nil {
		return int64(n), nil
	}
	switch v := m.env[t.Val].(type) {
	case Num:
		return int64(v), nil
	case Bool:
		if v {
			return 1, nil
		}
		return 0, nil
	}
	return 0, errf(kindInvalidValue, "Invalid loop count '%s'", t.Val)
}

// matchBrace returns the index of the close brace matching the block opened
// just before from, or -1.  Depth-counted so loops can nest.
func (m *machine) matchBrace(from, end int) int {
	depth := 0
	for i := from; i < end; i++ {
		switch m.toks[i].Kind {
		case lexer.TokBraceOpen:
			depth++
		case lexer.TokBraceClose:
			if depth == 0 {
				return i
			}
			depth--
		}
	}
	return -1
}

// matchLoopEnd is matchBrace for the keyword-delimited loop form.
func (m *machine) matchLoopEnd(from, end int) int {
	depth := 0
	for i := from; i < end; i++ {
		if m.toks[i].Kind != lexer.TokWord {
			continue
		}
		switch m.toks[i].Val {
		case kwLoopCount:
			depth++
		case kwLoopEnd:
			if depth == 0 {
				return i
			}
			depth--
		}
	}
	return -1
}
