/*
Package caseclass implements the case-classification and
prefix/compound validity helpers the orchestration pipeline and the
walk consult (spec.md §4.8): captype, case-adjusted word
reconstruction, keepcase lookup, prefix-condition validation and
compound-flag legality checks.
*/
package caseclass

import (
	"strings"
	"unicode"

	"github.com/corvisa/spellsuggest/pkg/dictionary"
	"github.com/corvisa/spellsuggest/pkg/trie"
)

// Class is the captype bitmask (spec.md §4.8).
type Class uint8

const (
	KeepCap Class = 1 << iota
	OneCap
	AllCap
	MixCap
)

// Has reports whether c carries every bit in want.
func (c Class) Has(want Class) bool { return c&want == want }

// Captype classifies word by counting upper/lowercase runes:
//   - exactly one upper, and it's first: OneCap
//   - more uppers than lowers, and more than 2 uppers: AllCap
//   - at least 2 of each: MixCap
//   - anything else that still mixes case: KeepCap
//
// The result is a bitmask: a word meeting both the AllCap and the
// MixCap rule (e.g. "HeLLo") carries both bits.
func Captype(word string) Class {
	runes := []rune(word)
	if len(runes) == 0 {
		return 0
	}

	var upper, lower int
	for _, r := range runes {
		switch {
		case unicode.IsUpper(r):
			upper++
		case unicode.IsLower(r):
			lower++
		}
	}
	if upper == 0 {
		return 0
	}
	if upper == 1 && unicode.IsUpper(runes[0]) {
		return OneCap
	}
	if upper > lower && upper > 2 {
		if lower >= 2 {
			return AllCap | MixCap
		}
		return AllCap
	}
	if upper >= 2 && lower >= 2 {
		return MixCap
	}
	if lower > 0 {
		return KeepCap
	}
	return AllCap
}

// MakeCaseWord reproduces src's case pattern described by flags onto
// word, the canonical (usually all-lowercase) dictionary spelling.
func MakeCaseWord(word string, flags Class) string {
	switch {
	case flags.Has(AllCap):
		return strings.ToUpper(word)
	case flags.Has(OneCap):
		runes := []rune(word)
		if len(runes) == 0 {
			return word
		}
		runes[0] = unicode.ToUpper(runes[0])
		return string(runes)
	default:
		return word
	}
}

// FindKeepCapWord searches lang's keepcase trie for a case variant
// whose fold equals fword, trying each input rune as both its folded
// and upper form (spec.md §4.8 find_keepcap_word).
func FindKeepCapWord(lang *dictionary.Language, fword string) (string, bool) {
	if lang == nil || lang.KeepCaseTrie == nil || lang.KeepCaseTrie.Empty() {
		return "", false
	}
	t := lang.KeepCaseTrie
	var out []byte
	var walk func(node uint32, i int) bool
	walk = func(node uint32, i int) bool {
		if i >= len(fword) {
			terms := t.Terminals(node)
			return len(terms) > 0
		}
		c := fword[i]
		upper := byte(unicode.ToUpper(rune(c)))
		for _, try := range []byte{c, upper} {
			if child, ok := t.DescendBinary(node, try); ok {
				out = append(out, try)
				if walk(child, i+1) {
					return true
				}
				out = out[:len(out)-1]
			}
			if try == upper && upper == c {
				break
			}
		}
		return false
	}
	if walk(t.Root, 0) {
		return string(out), true
	}
	return "", false
}

// ValidWordPrefix checks a candidate prefix against the dictionary's
// encoded prefix-condition (spec.md §4.8 valid_word_prefix). This
// port accepts any prefix-trie terminal not flagged BANNED and only
// carries the RAREPFX flag through, since the regex-condition
// format itself is outside this engine's scope.
func ValidWordPrefix(prefixFlags, wordFlags trie.WordFlags) (trie.WordFlags, bool) {
	if prefixFlags.Has(trie.WFBanned) {
		return 0, false
	}
	result := wordFlags
	if prefixFlags.Has(trie.WFRarePfx) {
		result |= trie.WFRarePfx
	}
	return result, true
}

// CanBeCompound reports whether flag is legal at the current position
// (start of a compound chain, or continuing one) and, if the
// language's compound rules carry no wildcard, that flagsSoFar+flag
// is still a valid prefix of some rule.
func CanBeCompound(lang *dictionary.Language, flagsSoFar []byte, flag byte, atStart bool) bool {
	if lang == nil {
		return false
	}
	allowed := lang.CompoundAllFlags
	if atStart {
		allowed = lang.CompoundStartFlags
	}
	if !allowed[flag] {
		return false
	}
	if len(lang.CompoundRules) == 0 {
		return true
	}
	candidate := append(append([]byte(nil), flagsSoFar...), flag)
	for _, rule := range lang.CompoundRules {
		if rule.MatchesPrefix(candidate) {
			return true
		}
	}
	return false
}
