package trie

import "testing"

func TestBuilderRoundTrip(t *testing.T) {
	b := NewBuilder()
	words := map[string]WordFlags{
		"the":   0,
		"these": 0,
		"there": 0,
		"them":  0,
	}
	for w, f := range words {
		b.Add(w, f)
	}
	tr := b.Build()

	for w := range words {
		if !containsWord(tr, w) {
			t.Errorf("expected trie to contain %q", w)
		}
	}
	if containsWord(tr, "thxyz") {
		t.Errorf("did not expect trie to contain thxyz")
	}
}

func TestMultipleTerminalsSameWord(t *testing.T) {
	b := NewBuilder()
	b.Add("vim", WFOneCap)
	b.Add("vim", WFKeepCap)
	tr := b.Build()

	n := tr.Root
	for _, ch := range []byte("vim") {
		next, ok := tr.Descend(n, ch)
		if !ok {
			t.Fatalf("expected descend on %q to succeed", string(ch))
		}
		n = next
	}
	terms := tr.Terminals(n)
	if len(terms) != 2 {
		t.Fatalf("expected 2 terminals, got %d", len(terms))
	}
}

// containsWord walks the trie by hand, exercising both Descend and
// Terminals the way the state machine walk will.
func containsWord(tr *Trie, word string) bool {
	n := tr.Root
	for i := 0; i < len(word); i++ {
		next, ok := tr.Descend(n, word[i])
		if !ok {
			return false
		}
		n = next
	}
	return len(tr.Terminals(n)) > 0
}

func TestDescendBinaryMatchesLinear(t *testing.T) {
	b := NewBuilder()
	for _, w := range []string{"apple", "ant", "ape", "art", "awl", "axe", "any"} {
		b.Add(w, 0)
	}
	tr := b.Build()

	n := tr.Root
	tr.EnumerateChildren(n, func(bb byte, child uint32) bool {
		lin, okLin := tr.Descend(n, bb)
		bin, okBin := tr.DescendBinary(n, bb)
		if okLin != okBin || lin != bin {
			t.Errorf("DescendBinary(%q) = (%d,%v), Descend = (%d,%v)", bb, bin, okBin, lin, okLin)
		}
		return true
	})
}
