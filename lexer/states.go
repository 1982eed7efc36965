package lexer

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

func lexDefault(l *lexer) lexFn {
	for {
		switch r := l.next(); {
		case r == eof:
			l.flushWord()
			return nil
		case r == ';':
			return skipComment(lexDefault)
		case r == '"':
			l.flushWord()
			return lexString
		case r == '<':
			l.flushWord()
			return lexExpr
		case r == '=':
			l.flushWord()
			l.emit(TokAssign, "=")
		case r == '{':
			l.flushWord()
			l.emit(TokBraceOpen, "{")
		case r == '}':
			l.flushWord()
			l.emit(TokBraceClose, "}")
		case unicode.IsSpace(r):
			l.flushWord()
		default:
			l.word.WriteRune(r)
		}
	}
}

// skipComment consumes input through the next newline and resumes the state
// the comment interrupted.  A semicolon starts a comment anywhere, quoted
// strings and expression spans included; the rule order is part of the
// language.
func skipComment(resume lexFn) lexFn {
	return func(l *lexer) lexFn {
		if i := strings.IndexByte(l.input[l.pos:], '\n'); i == -1 {
			l.pos = len(l.input)
		} else {
			l.pos += i + 1
		}
		return resume
	}
}

func lexString(l *lexer) lexFn {
	for {
		switch r := l.next(); {
		case r == eof:
			// Unterminated: flush as a mismatched word so the
			// failure surfaces during evaluation.
			l.emit(TokWord, `"`+l.take())
			return nil
		case r == ';':
			return skipComment(lexString)
		case r == '"':
			l.emit(TokString, l.take())
			return lexDefault
		default:
			l.word.WriteRune(r)
		}
	}
}

func lexExpr(l *lexer) lexFn {
	for {
		switch r := l.next(); {
		case r == eof:
			l.flushExpr()
			return nil
		case r == ';':
			return skipComment(lexExpr)
		case r == '>':
			// A ‘>’ closes the span unless it reads as a
			// comparison operator: ‘>=’, or a lone ‘>’ between
			// whitespace.
			switch {
			case l.peek() == '=':
				l.next()
				l.word.WriteString(">=")
			case endsInSpace(l.word.String()) && isSpaceOrEof(l.peek()):
				l.word.WriteRune('>')
			default:
				l.flushExpr()
				return lexDefault
			}
		default:
			l.word.WriteRune(r)
		}
	}
}

// flushExpr emits the accumulated span, trimmed, unless it is empty.
func (l *lexer) flushExpr() {
	if s := strings.TrimSpace(l.take()); s != "" {
		l.emit(TokExpr, s)
	}
}

func endsInSpace(s string) bool {
	r, n := utf8.DecodeLastRuneInString(s)
	return n > 0 && unicode.IsSpace(r)
}

func isSpaceOrEof(r rune) bool {
	return r == eof || unicode.IsSpace(r)
}
