package lexer

import "testing"

// BEGIN TESTING LEXER OBJECT

func TestNext(t *testing.T) {
	s := "¢ȠʗǱɓǇϴ¤Ίϑ'щƎcɛǩΟȏɁƅ"
	l := newLexer(s)

	for _, x := range []rune(s) {
		if y := l.next(); x != y {
			t.Fatalf("Expected ‘%c’ but got ‘%c’", x, y)
		}
	}

	if r := l.next(); r != eof {
		t.Fatalf("Expected ‘eof’ but got ‘%c’", r)
	}
}

func TestPeek(t *testing.T) {
	s := "¢ȠʗǱɓǇϴ¤Ίϑ'щƎcɛǩΟȏɁƅ"
	l := newLexer(s)
	chk := func(x, y rune) {
		if x != y {
			t.Fatalf("Expected ‘%c’ but got ‘%c’", x, y)
		}
	}

	rs := []rune(s)
	chk(l.peek(), rs[0])
	chk(l.peek(), rs[0])

	l.next()
	l.next()

	chk(l.peek(), rs[2])
	chk(l.peek(), rs[2])
}

// BEGIN TESTING STATE FUNCTIONS

func assertTokens(t *testing.T, s string, ys ...Token) {
	t.Helper()
	xs := Lex(s)
	if len(xs) != len(ys) {
		t.Fatalf("Expected %d tokens but got %d (%v)", len(ys), len(xs), xs)
	}
	for i := range xs {
		if xs[i] != ys[i] {
			t.Fatalf("Expected token %d to be %s but got %s",
				i, ys[i], xs[i])
		}
	}
}

func TestLexWords(t *testing.T) {
	assertTokens(t, "WA MOE n = 3",
		Token{TokWord, "WA"},
		Token{TokWord, "MOE"},
		Token{TokWord, "n"},
		Token{TokAssign, "="},
		Token{TokWord, "3"},
	)
}

func TestLexAssignWithoutSpaces(t *testing.T) {
	assertTokens(t, "a=b",
		Token{TokWord, "a"},
		Token{TokAssign, "="},
		Token{TokWord, "b"},
	)
}

func TestLexString(t *testing.T) {
	assertTokens(t, `BAU "Bau Bau World!"`,
		Token{TokWord, "BAU"},
		Token{TokString, "Bau Bau World!"},
	)
}

func TestLexStringUnterminated(t *testing.T) {
	// Absorbed, not diagnosed; the mismatched word fails later as a
	// value.
	assertTokens(t, `BAU "oops`,
		Token{TokWord, "BAU"},
		Token{TokWord, `"oops`},
	)
}

func TestLexBraces(t *testing.T) {
	assertTokens(t, "PONDE i 1..3 {BAU i}",
		Token{TokWord, "PONDE"},
		Token{TokWord, "i"},
		Token{TokWord, "1..3"},
		Token{TokBraceOpen, "{"},
		Token{TokWord, "BAU"},
		Token{TokWord, "i"},
		Token{TokBraceClose, "}"},
	)
}

func TestLexExpr(t *testing.T) {
	assertTokens(t, "WA MOE x = <1 + 2>",
		Token{TokWord, "WA"},
		Token{TokWord, "MOE"},
		Token{TokWord, "x"},
		Token{TokAssign, "="},
		Token{TokExpr, "1 + 2"},
	)
}

func TestLexExprPreservesInnerSpace(t *testing.T) {
	assertTokens(t, "<1   +   2>", Token{TokExpr, "1   +   2"})
}

func TestLexExprComparison(t *testing.T) {
	assertTokens(t, "<5 > 3>", Token{TokExpr, "5 > 3"})
	assertTokens(t, "<a >= b>", Token{TokExpr, "a >= b"})
	assertTokens(t, "<a < b>", Token{TokExpr, "a < b"})
}

func TestLexExprUnterminated(t *testing.T) {
	assertTokens(t, "CO x = <1 + 2",
		Token{TokWord, "CO"},
		Token{TokWord, "x"},
		Token{TokAssign, "="},
		Token{TokExpr, "1 + 2"},
	)
}

func TestLexExprEmpty(t *testing.T) {
	assertTokens(t, "<> x", Token{TokWord, "x"})
}

func TestLexComment(t *testing.T) {
	assertTokens(t, "BAU x ; wan wan\nBAU y",
		Token{TokWord, "BAU"},
		Token{TokWord, "x"},
		Token{TokWord, "BAU"},
		Token{TokWord, "y"},
	)
}

func TestLexCommentGluesWords(t *testing.T) {
	// A comment eats its newline, so a word interrupted mid-run
	// continues on the next line.  Part of the language.
	assertTokens(t, "x; comment\ny", Token{TokWord, "xy"})
}

func TestLexCommentInString(t *testing.T) {
	// The comment rule outranks the quoted-string rule.
	assertTokens(t, "\"half; rest\ndone\"", Token{TokString, "halfdone"})
}
