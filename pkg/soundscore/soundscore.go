/*
Package soundscore implements the dedicated sound-alike scorer
(spec.md §4.3): a short routine over two already sound-folded strings
that is much cheaper than the general edit-distance scorer and is
only ever asked to compare strings within 2 characters of each other
in length.
*/
package soundscore

import "github.com/corvisa/spellsuggest/pkg/scores"

// Score compares two sound-folded strings, bad and good, both assumed
// to already carry the leading '*' vowel marker convention
// (dictionary.DefaultSoundFold). Returns scores.MaxMax if the length
// delta falls outside [-2, 2].
func Score(bad, good string) int {
	delta := len(good) - len(bad)
	if delta < -2 || delta > 2 {
		return scores.MaxMax
	}

	a := []byte(bad)
	b := []byte(good)

	// Skip an identical prefix; the leading '*' marker (if present on
	// both) is just another byte at this point and falls out of the
	// common-prefix skip naturally.
	i := 0
	for i < len(a) && i < len(b) && a[i] == b[i] {
		i++
	}
	a = a[i:]
	b = b[i:]

	leadingVowel := i == 0 && ((len(bad) > 0 && bad[0] == '*') || (len(good) > 0 && good[0] == '*'))

	if len(a) == 0 && len(b) == 0 {
		return 0
	}

	insCost, delCost := scores.Ins, scores.Del
	if leadingVowel {
		// A leading vowel makes an initial insert/delete cheaper: the
		// walk already treats '*' words specially at STATE_START.
		insCost, delCost = scores.InsComp, scores.DelComp
	}

	switch delta {
	case 0:
		return score0(a, b)
	case 1:
		// good is one byte longer than bad.
		return scoreDelta(b, a, insCost, +1)
	case -1:
		// bad is one byte longer than good.
		return scoreDelta(a, b, delCost, -1)
	case 2:
		return scoreDoubleDelta(b, a, insCost, +1)
	case -2:
		return scoreDoubleDelta(a, b, delCost, -1)
	}
	return scores.MaxMax
}

// score0 handles equal-length remainders: either a single
// substitution, or a swap of the next two characters.
func score0(a, b []byte) int {
	if len(a) == 0 {
		return 0
	}
	best := scores.MaxMax
	if len(a) == len(b) && string(a[1:]) == string(b[1:]) {
		best = scores.Subst
	}
	if len(a) >= 2 && len(b) >= 2 && a[0] == b[1] && a[1] == b[0] && a[0] != a[1] && string(a[2:]) == string(b[2:]) {
		if scores.Swap < best {
			best = scores.Swap
		}
	}
	return best
}

// scoreDelta handles a one-character length difference: longer has
// one extra leading byte. Tries either an insert at the front of the
// shorter string, or an insert after matching one more character.
func scoreDelta(longer, shorter []byte, insCost int, sign int) int {
	if len(shorter) == 0 {
		return insCost
	}
	best := scores.MaxMax
	if string(longer[1:]) == string(shorter) {
		best = insCost
	}
	// Try skipping one matching byte before the insert.
	if longer[0] == shorter[0] {
		rest := scoreDelta(longer[1:], shorter[1:], insCost, sign)
		if rest < best {
			best = rest
		}
	}
	return best
}

// scoreDoubleDelta handles a two-character length difference: two
// inserts, optionally after matching a leading byte.
func scoreDoubleDelta(longer, shorter []byte, insCost int, sign int) int {
	if len(shorter) == 0 {
		if len(longer) <= 2 {
			return insCost * 2
		}
		return scores.MaxMax
	}
	best := scores.MaxMax
	if len(longer) >= len(shorter)+2 && string(longer[2:]) == string(shorter) {
		best = insCost * 2
	}
	if longer[0] == shorter[0] {
		rest := scoreDoubleDelta(longer[1:], shorter[1:], insCost, sign)
		if rest < best {
			best = rest
		}
	}
	return best
}
