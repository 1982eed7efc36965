package lexer

import "fmt"

type TokenKind int

const (
	TokWord TokenKind = iota // A bare identifier, keyword, or number
	TokString                // A quoted string, quotes stripped
	TokExpr                  // An expression span, brackets stripped

	TokAssign // The ‘=’ delimiter
	TokBraceOpen
	TokBraceClose
)

type Token struct {
	Kind TokenKind
	Val  string
}

// Maximum length of a token value before truncation in diagnostics printing
const maxStrLen = 20

func (t Token) String() string {
	switch t.Kind {
	case TokWord:
		if len(t.Val) > maxStrLen {
			return fmt.Sprintf("‘%.*s…’", maxStrLen, t.Val)
		}
		return "‘" + t.Val + "’"
	case TokString:
		if len(t.Val) > maxStrLen {
			return fmt.Sprintf("‘\"%.*s…\"’", maxStrLen, t.Val)
		}
		return "‘\"" + t.Val + "\"’"
	case TokExpr:
		if len(t.Val) > maxStrLen {
			return fmt.Sprintf("‘<%.*s…>’", maxStrLen, t.Val)
		}
		return "‘<" + t.Val + ">’"

	case TokAssign:
		return "‘=’"
	case TokBraceOpen:
		return "‘{’"
	case TokBraceClose:
		return "‘}’"
	}

	panic("unreachable")
}
