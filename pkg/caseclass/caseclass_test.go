package caseclass

import (
	"testing"

	"github.com/corvisa/spellsuggest/pkg/dictionary"
	"github.com/corvisa/spellsuggest/pkg/trie"
)

func TestCaptypeOneCap(t *testing.T) {
	if got := Captype("Hello"); !got.Has(OneCap) {
		t.Fatalf("expected OneCap for \"Hello\", got %v", got)
	}
}

func TestCaptypeAllCap(t *testing.T) {
	if got := Captype("HELLO"); !got.Has(AllCap) {
		t.Fatalf("expected AllCap for \"HELLO\", got %v", got)
	}
}

func TestCaptypeMixCap(t *testing.T) {
	if got := Captype("HeLLo"); !got.Has(MixCap) {
		t.Fatalf("expected MixCap for \"HeLLo\", got %v", got)
	}
}

func TestCaptypeLowercase(t *testing.T) {
	if got := Captype("hello"); got != 0 {
		t.Fatalf("expected no case flags for all-lowercase, got %v", got)
	}
}

func TestMakeCaseWordAllCap(t *testing.T) {
	if got := MakeCaseWord("there", AllCap); got != "THERE" {
		t.Fatalf("expected THERE, got %q", got)
	}
}

func TestMakeCaseWordOneCap(t *testing.T) {
	if got := MakeCaseWord("there", OneCap); got != "There" {
		t.Fatalf("expected There, got %q", got)
	}
}

func TestFindKeepCapWord(t *testing.T) {
	b := dictionary.NewBuilder("test").AddKeepCase("iPhone", trie.WFKeepCap)
	lang := b.Build()
	got, ok := FindKeepCapWord(lang, "iphone")
	if !ok {
		t.Fatal("expected to find a keepcase variant for \"iphone\"")
	}
	if got != "iPhone" {
		t.Fatalf("expected \"iPhone\", got %q", got)
	}
}

func TestCanBeCompoundRespectsStartFlags(t *testing.T) {
	b := dictionary.NewBuilder("test").SetCompoundFlags([]byte{'A', 'B'}, []byte{'A'})
	lang := b.Build()
	if !CanBeCompound(lang, nil, 'A', true) {
		t.Fatal("expected 'A' to be a legal compound start flag")
	}
	if CanBeCompound(lang, nil, 'B', true) {
		t.Fatal("did not expect 'B' to be a legal compound start flag")
	}
	if !CanBeCompound(lang, []byte{'A'}, 'B', false) {
		t.Fatal("expected 'B' to be legal mid-compound")
	}
}
