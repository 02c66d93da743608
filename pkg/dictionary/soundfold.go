package dictionary

import "strings"

// DefaultSoundFold is a minimal phonetic fold usable as a dictionary's
// SoundFoldFunc when no language-specific transform is supplied. The
// actual soundfold transform is explicitly out of scope for the
// suggestion core (spec.md §1): "the soundfold transformation itself
// (treated as a pure function provided by the dictionary)". This is a
// stand-in, not the reference algorithm, grounded loosely on the
// leading-vowel-marker convention spec.md §4.3 describes: a leading
// vowel is marked with '*' so the sound-alike scorer's cheaper
// leading insert/delete branch applies to it.
func DefaultSoundFold(word string, collapseWhitespace bool) string {
	lower := strings.ToLower(word)
	if collapseWhitespace {
		lower = strings.Join(strings.Fields(lower), " ")
	}

	var b strings.Builder
	b.Grow(len(lower))
	var lastClass byte
	for i := 0; i < len(lower); i++ {
		c := lower[i]
		class := soundClass(c)
		if class == 0 {
			lastClass = 0
			continue
		}
		if i == 0 && isVowel(c) {
			b.WriteByte('*')
		}
		if class == lastClass {
			continue // collapse runs of the same phonetic class
		}
		b.WriteByte(class)
		lastClass = class
	}
	return b.String()
}

func isVowel(c byte) bool {
	switch c {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}

// soundClass buckets a byte into a coarse phonetic class, loosely
// modeled on Soundex-style consonant grouping. Returns 0 for anything
// that doesn't participate (digits, punctuation, whitespace).
func soundClass(c byte) byte {
	switch c {
	case 'a', 'e', 'i', 'o', 'u', 'y', 'h', 'w':
		return 'A'
	case 'b', 'f', 'p', 'v':
		return 'B'
	case 'c', 'g', 'j', 'k', 'q', 's', 'x', 'z':
		return 'C'
	case 'd', 't':
		return 'D'
	case 'l':
		return 'L'
	case 'm', 'n':
		return 'M'
	case 'r':
		return 'R'
	default:
		return 0
	}
}
