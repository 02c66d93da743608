package walk

import (
	"context"
	"testing"

	"github.com/corvisa/spellsuggest/pkg/candidate"
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
	return b.Build()
}

func runWalk(t *testing.T, bad string, maxCount int) []candidate.Suggestion {
	t.Helper()
	lang := testLanguage()
	store := candidate.New(maxCount)
	Run(context.Background(), Options{
		Lang:     lang,
		Trie:     lang.FoldTrie,
		BadWord:  []rune(bad),
		Store:    store,
	})
	return store.Finalize()
}

func TestWalkFindsRepRuleCorrection(t *testing.T) {
	out := runWalk(t, "hte", 3)
	if len(out) == 0 {
		t.Fatal("expected at least one suggestion for \"hte\"")
	}
	if out[0].Word != "the" {
		t.Fatalf("expected top suggestion \"the\", got %q (score %d)", out[0].Word, out[0].Score)
	}
}

func TestWalkFindsDeletionCorrection(t *testing.T) {
	out := runWalk(t, "thees", 3)
	found := false
	for _, s := range out {
		if s.Word == "these" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected \"these\" among suggestions for \"thees\", got %+v", out)
	}
}

func TestWalkRespectsMaxCount(t *testing.T) {
	out := runWalk(t, "teh", 2)
	if len(out) > 2 {
		t.Fatalf("expected at most 2 suggestions, got %d", len(out))
	}
}

func TestWalkFindsThreeCharacterRotation(t *testing.T) {
	// "hetm" rotating its first three runes right ("het" -> "the")
	// yields the dictionary word "them".
	out := runWalk(t, "hetm", 5)
	found := false
	for _, s := range out {
		if s.Word == "them" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected \"them\" among suggestions for \"hetm\", got %+v", out)
	}
}

func TestWalkFindsCompoundWord(t *testing.T) {
	b := dictionary.NewBuilder("compound").
		AddWord("sun", trie.WordFlags(0).WithCompoundFlag('A'), 0).
		AddWord("light", 0, 0).
		SetCompoundFlags([]byte{'A'}, []byte{'A'}).
		SetCompoundLimits(3, 8, 4)
	lang := b.Build()

	// "sunlight" itself would be a no-op suggestion; the misspelling
	// needs one insert, and only the compound restart reaches "sunlight".
	store := candidate.New(5)
	Run(context.Background(), Options{
		Lang:    lang,
		Trie:    lang.FoldTrie,
		BadWord: []rune("sunligt"),
		Store:   store,
	})
	out := store.Finalize()
	found := false
	for _, s := range out {
		if s.Word == "sunlight" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected \"sunlight\" among suggestions, got %+v", out)
	}
}

func TestWalkFindsWordSplit(t *testing.T) {
	b := dictionary.NewBuilder("split").
		AddWord("ice", 0, 0).
		AddWord("cream", 0, 0)
	lang := b.Build()

	store := candidate.New(5)
	Run(context.Background(), Options{
		Lang:    lang,
		Trie:    lang.FoldTrie,
		BadWord: []rune("icecream"),
		Store:   store,
	})
	out := store.Finalize()
	found := false
	for _, s := range out {
		if s.Word == "ice cream" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected \"ice cream\" among suggestions, got %+v", out)
	}
}

func TestWalkAppliesPrefixTree(t *testing.T) {
	b := dictionary.NewBuilder("prefix").
		AddWord("do", 0, 0).
		AddPrefix("re", 0)
	lang := b.Build()

	// "redo" is not in the fold trie, so only the prefix tree ("re"
	// stripped, then "do" matched) can produce it from "redoo".
	store := candidate.New(5)
	Run(context.Background(), Options{
		Lang:    lang,
		Trie:    lang.FoldTrie,
		BadWord: []rune("redoo"),
		Store:   store,
	})
	out := store.Finalize()
	found := false
	for _, s := range out {
		if s.Word == "redo" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected \"redo\" among suggestions for \"redoo\" via the prefix tree, got %+v", out)
	}
}

func TestWalkSoundAlikeReconstructsRealWord(t *testing.T) {
	b := dictionary.NewBuilder("sound").AddWord("xyzzy", 0, 0)
	b.EnableSoundTrie()
	lang := b.Build()

	salBad := lang.SoundFold("xyzzy", true)
	store := candidate.New(5)
	Run(context.Background(), Options{
		Lang:        lang,
		Trie:        lang.SoundTrie,
		SoundFold:   true,
		ApplySFMax:  true,
		BadWord:     []rune(salBad),
		OrigBadWord: "xyzzi",
		Store:       store,
	})
	out := store.Finalize()
	if len(out) == 0 {
		t.Fatal("expected a sound-alike reconstruction")
	}
	if out[0].Word != "xyzzy" {
		t.Fatalf("expected the real dictionary word \"xyzzy\" reconstructed via SugBuffer, got %q", out[0].Word)
	}
	if !out[0].HadBonus {
		t.Fatal("expected a sound-alike reconstruction to carry HadBonus")
	}
}

func TestWalkAppliesCaseRestoration(t *testing.T) {
	b := dictionary.NewBuilder("case").AddWord("paris", trie.WFKeepCap, 0)
	b.AddKeepCase("Paris", trie.WFKeepCap)
	lang := b.Build()

	store := candidate.New(5)
	Run(context.Background(), Options{
		Lang:    lang,
		Trie:    lang.FoldTrie,
		BadWord: []rune("paris"),
		Store:   store,
	})
	out := store.Finalize()
	found := false
	for _, s := range out {
		if s.Word == "Paris" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected KEEPCAP word \"Paris\" restored from the keepcase trie, got %+v", out)
	}
}

func TestWalkCommitsNoEmptyWord(t *testing.T) {
	lang := testLanguage()
	store := candidate.New(5)
	Run(context.Background(), Options{
		Lang:    lang,
		Trie:    lang.FoldTrie,
		BadWord: []rune("the"),
		Store:   store,
	})
	out := store.Finalize()
	for _, s := range out {
		if s.Word == "" {
			t.Fatal("did not expect an empty-word suggestion")
		}
	}
}
