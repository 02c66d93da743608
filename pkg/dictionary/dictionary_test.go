package dictionary

import (
	"testing"

	"github.com/corvisa/spellsuggest/pkg/trie"
)

func buildTestLanguage() *Language {
	b := NewBuilder("test").
		AddWord("there", 0, 500).
		AddWord("their", 0, 400).
		AddWord("the", trie.WFOneCap, 1000).
		AddWord("them", 0, 300).
		AddRepRule("th", "f").
		AddMapClass("aeiou").
		SetCompoundLimits(3, 8, 4)
	b.EnableSoundTrie()
	return b.Build()
}

func TestBuilderProducesQueryableFoldTrie(t *testing.T) {
	lang := buildTestLanguage()
	if lang.FoldTrie.Empty() {
		t.Fatal("expected non-empty fold trie")
	}
	n := lang.FoldTrie.Root
	for _, c := range []byte("the") {
		child, ok := lang.FoldTrie.Descend(n, c)
		if !ok {
			t.Fatalf("descend failed at byte %q", c)
		}
		n = child
	}
	terms := lang.FoldTrie.Terminals(n)
	if len(terms) != 1 {
		t.Fatalf("expected 1 terminal for \"the\", got %d", len(terms))
	}
	if !terms[0].Has(trie.WFOneCap) {
		t.Fatalf("expected WFOneCap flag on \"the\"")
	}
}

func TestBuilderWordCountAndCommonBonus(t *testing.T) {
	lang := buildTestLanguage()
	if lang.WordCount["the"] != 1000 {
		t.Fatalf("expected word count 1000, got %d", lang.WordCount["the"])
	}
	if lang.CommonWordBonus("nonexistent") != 0 {
		t.Fatalf("expected 0 bonus for unseen word")
	}
	if lang.CommonWordBonus("the") <= 0 {
		t.Fatalf("expected positive bonus for common word")
	}
}

func TestBuilderRepRulesIndexed(t *testing.T) {
	lang := buildTestLanguage()
	rules := lang.RepRules.Lookup('t')
	if len(rules) != 1 || rules[0].To != "f" {
		t.Fatalf("expected 1 rule th->f, got %+v", rules)
	}
	if lang.RepRules.Lookup('z') != nil {
		t.Fatal("expected no rules for unused byte")
	}
}

func TestBuilderSoundTrieRoundTrips(t *testing.T) {
	lang := buildTestLanguage()
	if lang.SoundTrie == nil || lang.SugBuffer == nil {
		t.Fatal("expected sound trie and sug buffer to be built")
	}
	folded := lang.SoundFold("there", true)
	n := lang.SoundTrie.Root
	ok := true
	for i := 0; i < len(folded) && ok; i++ {
		n, ok = lang.SoundTrie.Descend(n, folded[i])
	}
	if !ok {
		t.Fatalf("sound trie does not contain fold of %q", "there")
	}
	terms := lang.SoundTrie.Terminals(n)
	if len(terms) != 1 {
		t.Fatalf("expected exactly 1 sound-trie terminal, got %d", len(terms))
	}
	nums := lang.SugBuffer.WordNumbers(int(terms[0]))
	if len(nums) == 0 {
		t.Fatal("expected at least one fold-trie word number for this sound")
	}
}

func TestLanguageIsSimilar(t *testing.T) {
	lang := buildTestLanguage()
	if !lang.IsSimilar('a', 'e') {
		t.Fatal("expected a and e to be similar (same map class)")
	}
	if lang.IsSimilar('a', 'b') {
		t.Fatal("did not expect a and b to be similar")
	}
	if !lang.IsSimilar('x', 'x') {
		t.Fatal("a character is always similar to itself")
	}
}

func TestCompoundRuleMatchesPrefix(t *testing.T) {
	r := CompoundRule{Pattern: []byte("AB?")}
	if !r.MatchesPrefix([]byte("A")) {
		t.Fatal("expected A to be a valid prefix of AB?")
	}
	if !r.MatchesPrefix([]byte("AB")) {
		t.Fatal("expected AB to be a valid prefix of AB?")
	}
	if !r.MatchesPrefix([]byte("ABZ")) {
		t.Fatal("expected ABZ to match via the wildcard slot")
	}
	if r.MatchesPrefix([]byte("C")) {
		t.Fatal("did not expect C to match pattern AB?")
	}
	if r.MatchesPrefix([]byte("ABZZ")) {
		t.Fatal("did not expect a longer-than-pattern prefix to match")
	}
}
