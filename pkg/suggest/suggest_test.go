package suggest

import (
	"context"
	"testing"
	"time"

	"github.com/corvisa/spellsuggest/pkg/dictionary"
	"github.com/corvisa/spellsuggest/pkg/trie"
)

func testLanguage() *dictionary.Language {
	b := dictionary.NewBuilder("test").
		AddWord("the", 0, 1000).
		AddWord("these", 0, 500).
		AddWord("there", 0, 400).
		AddWord("them", 0, 300).
		AddRepRule("hte", "the")
	b.EnableSoundTrie()
	return b.Build()
}

func TestSuggestRepRuleTopResult(t *testing.T) {
	e := NewEngine(testLanguage())
	out := e.Suggest(context.Background(), "hte", Options{Mode: Best, MaxCount: 3, Timeout: time.Second})
	if len(out) == 0 {
		t.Fatal("expected at least one suggestion")
	}
	if out[0].Word != "the" {
		t.Fatalf("expected top suggestion \"the\", got %q", out[0].Word)
	}
}

func TestSuggestRespectsMaxCount(t *testing.T) {
	e := NewEngine(testLanguage())
	out := e.Suggest(context.Background(), "teh", Options{Mode: Best, MaxCount: 2, Timeout: time.Second})
	if len(out) > 2 {
		t.Fatalf("expected at most 2 suggestions, got %d", len(out))
	}
}

func TestSuggestBannedWordExcluded(t *testing.T) {
	e := NewEngine(testLanguage())
	out := e.Suggest(context.Background(), "the", Options{Mode: Best, MaxCount: 5, BanBad: true, Timeout: time.Second})
	for _, s := range out {
		if s.Word == "the" {
			t.Fatal("did not expect the banned bad word to be suggested")
		}
	}
}

func TestSuggestRepeatedWordHalf(t *testing.T) {
	e := NewEngine(testLanguage())
	out := e.Suggest(context.Background(), "the the", Options{Mode: Best, MaxCount: 5, Timeout: time.Second})
	found := false
	for _, s := range out {
		if s.Word == "the" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected \"the\" among suggestions for repeated-word input, got %+v", out)
	}
}

func TestSuggestFastModeSkipsSoundAlike(t *testing.T) {
	e := NewEngine(testLanguage())
	out := e.Suggest(context.Background(), "thees", Options{Mode: Fast, MaxCount: 5, Timeout: time.Second})
	if len(out) == 0 {
		t.Fatal("expected edit-distance suggestions even in fast mode")
	}
}

func TestSuggestDoubleModePopulatesSecondary(t *testing.T) {
	e := NewEngine(testLanguage())
	out := e.Suggest(context.Background(), "teh", Options{Mode: Double, MaxCount: 5, Timeout: time.Second})
	if len(out) == 0 {
		t.Fatal("expected suggestions in double mode")
	}
	found := false
	for _, s := range out {
		if s.Word == "the" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected \"the\" among double-mode suggestions for \"teh\", got %+v", out)
	}
}

func TestSuggestRestoresKeepCapWord(t *testing.T) {
	b := dictionary.NewBuilder("case").
		AddWord("paris", trie.WFKeepCap, 0)
	b.AddKeepCase("Paris", trie.WFKeepCap)
	b.EnableSoundTrie()
	e := NewEngine(b.Build())

	out := e.Suggest(context.Background(), "paris", Options{Mode: Best, MaxCount: 5, Timeout: time.Second})
	found := false
	for _, s := range out {
		if s.Word == "Paris" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected \"Paris\" restored end-to-end through Suggest, got %+v", out)
	}
}

func TestSuggestEmptyLanguagesReturnsEmpty(t *testing.T) {
	e := NewEngine()
	out := e.Suggest(context.Background(), "hte", Options{Mode: Best, MaxCount: 5, Timeout: time.Second})
	if len(out) != 0 {
		t.Fatalf("expected no suggestions with no languages loaded, got %+v", out)
	}
}
