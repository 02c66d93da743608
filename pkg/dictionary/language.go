/*
Package dictionary holds the read-only, query-shared data model the
suggestion engine walks: the fold-case/prefix/keepcase/sound tries,
the REP and compound tables, the character-equivalence maps, and the
word-observation counts (spec.md §3 "Dictionary (Language)").

A Language is immutable for the lifetime of every query run against
it; the only per-dictionary mutable state from the original design
(sl_sounddone) is deliberately kept out of Language and lives in the
per-query state instead (spec.md §9 "Per-dictionary memo").
*/
package dictionary

import (
	"github.com/corvisa/spellsuggest/pkg/scores"
	"github.com/corvisa/spellsuggest/pkg/trie"
)

// SoundFoldFunc is the pure phonetic-folding function a Language
// provides. Its implementation is explicitly out of scope for the
// suggestion core (spec.md §1); DefaultSoundFold in soundfold.go is a
// simple stand-in a real dictionary loader would replace.
type SoundFoldFunc func(word string, collapseWhitespace bool) string

// Language is one compiled dictionary: a case-folded word trie plus
// every optional collaborator the walk and pipeline consult.
type Language struct {
	// Name identifies this language (the name given to its Builder).
	Name string

	FoldTrie     *trie.Trie
	PrefixTrie   *trie.Trie // optional
	KeepCaseTrie *trie.Trie // optional
	SoundTrie    *trie.Trie // optional

	// SugBuffer maps a sound-trie word number to the fold-trie word
	// numbers that soundfold to it (spec.md §3, §6 sug_buffer).
	SugBuffer *SugBuffer

	// WordsByNumber and WordFlagsByNumber let add_sound_suggest
	// (spec.md §4.7) reconstruct an original fold-trie spelling and its
	// flags from the word numbers SugBuffer decodes, without re-walking
	// FoldTrie. Indices match the word numbers EnableSoundTrie assigned.
	WordsByNumber     []string
	WordFlagsByNumber []trie.WordFlags

	RepRules    *RepTable
	SalRepRules *RepTable

	CompoundRules      []CompoundRule
	CompoundFlags      map[byte]bool
	CompoundStartFlags map[byte]bool
	CompoundAllFlags   map[byte]bool
	CompoundMinLen     int
	CompoundMax        int
	CompoundSylMax     int
	NoSplitSugs        bool
	NoBreak            bool
	NoCompoundSugs     bool

	// MapArray holds, for bytes with an ASCII-range equivalence class,
	// the index into MapClasses of their class; 0 means "no class".
	MapArray   [256]int
	MapClasses [][]rune
	// MapHash covers multi-byte characters outside the ASCII fast path.
	MapHash map[rune]int

	WordCount map[string]int

	RegionMask uint16

	SoundFold SoundFoldFunc
}

// IsSimilar reports whether a and b belong to the same MAP equivalence
// class (spec.md §4.2 substitution cost selection).
func (l *Language) IsSimilar(a, b rune) bool {
	if a == b {
		return true
	}
	classA, classB := -1, -1
	if a < 256 && l.MapArray[a] != 0 {
		classA = l.MapArray[a]
	} else if l.MapHash != nil {
		if c, ok := l.MapHash[a]; ok {
			classA = c
		}
	}
	if b < 256 && l.MapArray[b] != 0 {
		classB = l.MapArray[b]
	} else if l.MapHash != nil {
		if c, ok := l.MapHash[b]; ok {
			classB = c
		}
	}
	return classA != -1 && classA == classB
}

// CompoundRule is a per-language regex-like restriction on the
// sequence of compound flags a word-chain may carry (spec.md §4.6,
// §4.8 can_be_compound). Wildcard == true means "no restriction".
type CompoundRule struct {
	Pattern  []byte // raw flag sequence, '?' used as a single-flag wildcard
	Wildcard bool
}

// MatchesPrefix reports whether flags (the compound flag sequence
// accumulated so far) is consistent with being a prefix of r.Pattern.
func (r CompoundRule) MatchesPrefix(flags []byte) bool {
	if r.Wildcard {
		return true
	}
	if len(flags) > len(r.Pattern) {
		return false
	}
	for i, f := range flags {
		if r.Pattern[i] != '?' && r.Pattern[i] != f {
			return false
		}
	}
	return true
}

// CommonWordBonus returns the score reduction for a word seen often
// in the training corpus (spec.md §6 COMMON1/2/3, THRES2/3).
func (l *Language) CommonWordBonus(word string) int {
	count, ok := l.WordCount[word]
	if !ok {
		return 0
	}
	switch {
	case count >= scores.Thres3:
		return scores.Common3
	case count >= scores.Thres2:
		return scores.Common2
	default:
		return scores.Common1
	}
}
