package stack

import "testing"

func TestPushPop(t *testing.T) {
	s := New[int]()
	s.Push(1, 2, 3)

	if s.Size() != 3 {
		t.Errorf("Size = %d, want 3", s.Size())
	}

	for _, expect := range []int{3, 2, 1} {
		got, ok := s.Pop()
		if !ok {
			t.Fatal("Pop reported empty stack")
		}
		if got != expect {
			t.Errorf("Pop = %d, want %d", got, expect)
		}
	}

	if !s.IsEmpty() {
		t.Error("stack should be empty after draining")
	}
}

func TestPopEmpty(t *testing.T) {
	s := New[string]()

	got, ok := s.Pop()
	if ok {
		t.Error("Pop on empty stack reported ok")
	}
	if got != "" {
		t.Errorf("Pop on empty stack = %q, want zero value", got)
	}
}

func TestPushReversed(t *testing.T) {
	s := NewWithCapacity[int](4)
	s.PushReversed(1, 2, 3)

	for _, expect := range []int{1, 2, 3} {
		got, ok := s.Pop()
		if !ok {
			t.Fatal("Pop reported empty stack")
		}
		if got != expect {
			t.Errorf("Pop = %d, want %d", got, expect)
		}
	}
}
