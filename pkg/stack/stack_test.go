package stack

import "testing"

func assertTop[T comparable](t *testing.T, s Stack[T], x T) {
	y := s.Peek()
	if y == nil {
		t.Fatalf("Expected top of stack to be ‘%+v’ but the stack was empty", x)
	}
	if x != *y {
		t.Fatalf("Expected top of stack to be ‘%+v’ but got ‘%+v’", x, *y)
	}
}

func TestPush(t *testing.T) {
	s := New[int](0)
	s.Push(1)
	assertTop(t, s, 1)
	s.Push(69)
	assertTop(t, s, 69)
	s.Push(420)
	assertTop(t, s, 420)
}

func TestPop(t *testing.T) {
	s := New[int](4)
	s.Push(1)
	s.Push(2)
	s.Push(3)

	if x := s.Pop(); x == nil || *x != 3 {
		t.Fatalf("Expected to pop ‘3’ but got ‘%v’", x)
	}
	assertTop(t, s, 2)
	s.Pop()
	s.Pop()
	if x := s.Pop(); x != nil {
		t.Fatalf("Expected to pop nil from an empty stack but got ‘%v’", *x)
	}
}

func TestTopIs(t *testing.T) {
	s := New[string](0)
	if s.TopIs("foo") {
		t.Fatalf("An empty stack should have no top")
	}
	s.Push("foo")
	s.Push("bar")
	if s.TopIs("foo") {
		t.Fatalf("Expected top to be ‘bar’")
	}
	if !s.TopIs("bar") {
		t.Fatalf("Expected TopIs(\"bar\") to hold")
	}
}

func TestClear(t *testing.T) {
	s := New[int](0)
	s.Push(1)
	s.Push(2)
	s.Clear()
	if s.Peek() != nil {
		t.Fatalf("Expected a cleared stack to be empty")
	}
	s.Push(7)
	assertTop(t, s, 7)
}
