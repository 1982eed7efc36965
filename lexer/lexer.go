package lexer

import (
	"strings"
	"unicode/utf8"
)

const eof rune = -1

type lexer struct {
	input string          // The input string to lex
	pos   int             // The pos of the cursor in input
	width int             // Width of the last rune lexed
	word  strings.Builder // The token value being accumulated
	out   chan Token      // Token output channel
}

type lexFn func(*lexer) lexFn

func newLexer(input string) *lexer {
	return &lexer{
		input: input,
		out:   make(chan Token),
	}
}

// Lex scans input into its full token sequence.  Scanning never fails:
// malformed input is absorbed and surfaces later as value diagnostics
// during evaluation.
func Lex(input string) []Token {
	l := newLexer(input)
	go l.run()

	toks := make([]Token, 0, 64)
	for t := range l.out {
		toks = append(toks, t)
	}
	return toks
}

func (l *lexer) run() {
	for state := lexDefault; state != nil; {
		state = state(l)
	}
	close(l.out)
}

func (l *lexer) emit(k TokenKind, val string) {
	l.out <- Token{k, val}
}

// take returns and resets the accumulated token value.
func (l *lexer) take() string {
	s := l.word.String()
	l.word.Reset()
	return s
}

// flushWord emits the accumulated value as a word, if there is one.
func (l *lexer) flushWord() {
	if l.word.Len() > 0 {
		l.emit(TokWord, l.take())
	}
}

func (l *lexer) next() rune {
	var r rune

	if l.pos >= len(l.input) {
		l.width = 0
		return eof
	}
	r, l.width = utf8.DecodeRuneInString(l.input[l.pos:])
	l.pos += l.width
	return r
}

func (l *lexer) peek() rune {
	r := l.next()
	l.backup()
	return r
}

func (l *lexer) backup() {
	l.pos -= l.width
}
