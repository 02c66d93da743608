package editdist

import (
	"testing"
	"unicode"

	"github.com/corvisa/spellsuggest/pkg/scores"
)

func foldEqual(a, b rune) bool {
	return unicode.ToLower(a) == unicode.ToLower(b)
}

func TestScoreIdentical(t *testing.T) {
	if got := Score("hello", "hello", foldEqual, nil); got != 0 {
		t.Fatalf("expected 0 for identical words, got %d", got)
	}
}

func TestScoreEmptyOneSide(t *testing.T) {
	if got := Score("", "abc", foldEqual, nil); got != 3*scores.Ins {
		t.Fatalf("expected %d, got %d", 3*scores.Ins, got)
	}
	if got := Score("abc", "", foldEqual, nil); got != 3*scores.Del {
		t.Fatalf("expected %d, got %d", 3*scores.Del, got)
	}
}

func TestScoreCaseFold(t *testing.T) {
	got := Score("Hello", "hello", foldEqual, nil)
	if got != scores.ICase {
		t.Fatalf("expected pure-ICASE cost %d, got %d", scores.ICase, got)
	}
}

func TestScoreSwapCheaperThanTwoSubstitutions(t *testing.T) {
	got := Score("teh", "the", foldEqual, nil)
	if got != scores.Swap {
		t.Fatalf("expected swap-adjacent cost %d, got %d", scores.Swap, got)
	}
}

func TestScoreSymmetricWithoutSimilarity(t *testing.T) {
	a, b := "kitten", "sitting"
	if Score(a, b, foldEqual, nil) != Score(b, a, foldEqual, nil) {
		t.Fatal("expected edit_score to be symmetric when no SIMILAR map is active")
	}
}

func TestScoreLimitMatchesUnboundedBelowLimit(t *testing.T) {
	bad, good := "teh", "the"
	unbounded := Score(bad, good, foldEqual, nil)
	limited := ScoreLimit(bad, good, unbounded+1, foldEqual, nil)
	if limited != unbounded {
		t.Fatalf("expected ScoreLimit == Score (%d) when limit exceeds it, got %d", unbounded, limited)
	}
}

func TestScoreLimitAbortsAboveLimit(t *testing.T) {
	bad, good := "abcdefgh", "hgfedcba"
	got := ScoreLimit(bad, good, 1, foldEqual, nil)
	if got != scores.MaxMax {
		t.Fatalf("expected scores.MaxMax for an unreachable limit, got %d", got)
	}
}

func TestScoreLimitIdentical(t *testing.T) {
	if got := ScoreLimit("same", "same", 100, foldEqual, nil); got != 0 {
		t.Fatalf("expected 0 for identical words, got %d", got)
	}
}

func TestScoreLimitSimilarMap(t *testing.T) {
	similar := func(a, b rune) bool {
		return (a == 'a' && b == 'e') || (a == 'e' && b == 'a')
	}
	got := ScoreLimit("cat", "cet", 1000, foldEqual, similar)
	if got != scores.Similar {
		t.Fatalf("expected SIMILAR-only cost %d, got %d", scores.Similar, got)
	}
}
