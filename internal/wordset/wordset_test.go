package wordset

import "testing"

func TestAddContainsRemove(t *testing.T) {
	s := New()
	if s.Contains("the") {
		t.Fatal("expected empty set to not contain anything")
	}
	s.Add("the")
	if !s.Contains("the") {
		t.Fatal("expected set to contain \"the\" after Add")
	}
	if s.Len() != 1 {
		t.Fatalf("expected length 1, got %d", s.Len())
	}
	s.Remove("the")
	if s.Contains("the") {
		t.Fatal("expected \"the\" to be gone after Remove")
	}
}
