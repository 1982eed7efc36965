package vm

import (
	"fmt"
	"io"
	"strings"

	"git.sr.ht/~mango/baux/lexer"
	"git.sr.ht/~mango/baux/pkg/stack"
)

// condition is one level of an open conditional chain.
type condition struct {
	on    bool // This branch executes
	taken bool // Some branch of the chain has already run
}

type machine struct {
	toks    []lexer.Token
	env     Environment
	out     io.Writer
	conds   stack.Stack[condition]
	classes bool   // Print class-marker diagnostics
	counter string // Range-loop counter substitution; empty outside a body
	done    bool   // Set by the terminate statement
}

// Exec evaluates src, mutating env and appending to out in place.  Failures
// are reported as diagnostic lines in out and never abort the run; the only
// early exit is the terminate statement.  Exec is synchronous and offers no
// cancellation: a runaway loop is the host's problem.
func Exec(src string, env Environment, out io.Writer) {
	m := machine{
		toks:  lexer.Lex(src),
		env:   env,
		out:   out,
		conds: stack.New[condition](4),
	}

	pc := 0
	if len(m.toks) > 0 && m.toks[0].Kind == lexer.TokWord && m.toks[0].Val == kwFlag {
		m.classes = true
		pc = 1
	}
	m.runRange(pc, len(m.toks))
}

// runRange walks tokens in [pc, end).  Loop bodies re-enter a sub-range of
// the same token slice; nothing is ever re-lexed.
func (m *machine) runRange(pc, end int) {
	for pc < end && !m.done {
		pc = m.step(pc, end)
	}
}

// step dispatches on the statement-leading token and returns the program
// counter positioned after the statement.
func (m *machine) step(pc, end int) int {
	t := m.toks[pc]
	if t.Kind != lexer.TokWord {
		if m.executing() {
			m.report(errf(kindUnknownToken, "Unexpected %s", t))
		}
		return pc + 1
	}

	switch t.Val {
	case kwDeclare:
		return m.execDeclare(pc, end)
	case kwReassign:
		return m.execReassign(pc, end)
	case kwPrint:
		return m.execPrint(pc, end)
	case kwLoop:
		return m.execRangeLoop(pc, end)
	case kwLoopCount:
		return m.execCountLoop(pc, end)
	case kwIf:
		return m.execChainOpen(pc, end, false)
	case kwElif:
		return m.execChainOpen(pc, end, true)
	case kwElse:
		return m.execChainElse(pc)
	case kwClass:
		return m.execClass(pc, end)
	case kwClassEnd:
		// A class end resets every open conditional chain.
		if m.classes && m.executing() {
			fmt.Fprintln(m.out, "Class ended")
		}
		m.conds.Clear()
		return pc + 1
	case kwEnd:
		if m.executing() {
			fmt.Fprintln(m.out, "OYASUMI: program terminated")
			m.done = true
		}
		return pc + 1
	}

	if m.executing() {
		m.report(errf(kindUnknownToken, "'%s' is not a statement", t.Val))
	}
	return pc + 1
}

// executing reports whether a statement at the current position runs.  Only
// the innermost condition gates execution; enclosing levels are deliberately
// not re-checked.
func (m *machine) executing() bool {
	c := m.conds.Peek()
	return c == nil || c.on
}

func (m *machine) report(err error) {
	fmt.Fprintf(m.out, "%s\n", err)
}

// evalExprToken evaluates an expression span, substituting the loop counter
// placeholder when a range-loop body is active.
func (m *machine) evalExprToken(expr string) (Value, error) {
	if m.counter != "" {
		expr = strings.ReplaceAll(expr, counterWord, m.counter)
	}
	return evalExpr(expr, m.env)
}
