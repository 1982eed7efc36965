package stringsx

import "testing"

func assertFields(t *testing.T, xs []string, ys ...string) {
	if len(xs) != len(ys) {
		t.Fatalf("Expected %d fields but got %d (%q)", len(ys), len(xs), xs)
	}
	for i := range xs {
		if xs[i] != ys[i] {
			t.Fatalf("Expected field %d to be ‘%s’ but got ‘%s’", i, ys[i], xs[i])
		}
	}
}

func TestSplitMultiSimple(t *testing.T) {
	assertFields(t, SplitMulti("foo::bar::baz", []string{"::"}),
		"foo", "bar", "baz")
}

func TestSplitMultiRanges(t *testing.T) {
	assertFields(t, SplitMulti("1..10", []string{".."}), "1", "10")
	assertFields(t, SplitMulti("-3..3", []string{".."}), "-3", "3")
	assertFields(t, SplitMulti("1..2..3", []string{".."}), "1", "2", "3")
	assertFields(t, SplitMulti("1...3", []string{".."}), "1", ".3")
	assertFields(t, SplitMulti("13", []string{".."}), "13")
}

func TestSplitMultiEmptyFields(t *testing.T) {
	assertFields(t, SplitMulti("foo::bar--::baz", []string{"::", "--"}),
		"foo", "bar", "", "baz")
}

func TestSplitMultiOverlapping(t *testing.T) {
	assertFields(t, SplitMulti("foo:::bar", []string{"::", ":::"}),
		"foo", ":bar")
	assertFields(t, SplitMulti("foo:::bar", []string{":::", "::"}),
		"foo", "bar")
}
