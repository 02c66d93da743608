package dictionary

import (
	"sort"

	"github.com/corvisa/spellsuggest/pkg/trie"
)

// WordEntry is one dictionary word as seen at compile time: its
// spelling (already case-folded, since the fold trie keys on the
// folded form), its word-flags, and its observed corpus count.
type WordEntry struct {
	Word  string
	Flags trie.WordFlags
	Count int
}

// Builder assembles a Language from word entries, prefix entries,
// keepcase entries, REP/SAL rules and compound settings, flattening
// each set of entries into a trie.Trie via trie.Builder the same way
// the real affix/dictionary-file loader would after parsing.
type Builder struct {
	name string

	words    []WordEntry
	prefixes []WordEntry
	keepcase []WordEntry

	repRules    []RepRule
	salRepRules []RepRule

	compoundRules      []CompoundRule
	compoundFlags      map[byte]bool
	compoundStartFlags map[byte]bool
	compoundAllFlags   map[byte]bool
	compoundMinLen     int
	compoundMax        int
	compoundSylMax     int
	noSplitSugs        bool
	noBreak            bool
	noCompoundSugs     bool

	mapClasses [][]rune
	regionMask uint16

	soundFold     SoundFoldFunc
	soundEntries  []string          // sound-folded forms, in sound-trie word-number order
	soundToWords  map[string][]int  // sound-folded form -> fold-trie word numbers
	wordNumberOf  map[string]int    // fold-trie word (in insertion order) -> its word number
}

// NewBuilder returns an empty Builder for a language named name.
func NewBuilder(name string) *Builder {
	return &Builder{
		name:               name,
		compoundFlags:      make(map[byte]bool),
		compoundStartFlags: make(map[byte]bool),
		compoundAllFlags:   make(map[byte]bool),
		compoundMinLen:     3,
		compoundMax:        8,
		compoundSylMax:     4,
		soundToWords:       make(map[string][]int),
		wordNumberOf:       make(map[string]int),
	}
}

// AddWord stages a fold-trie word.
func (b *Builder) AddWord(word string, flags trie.WordFlags, count int) *Builder {
	if _, exists := b.wordNumberOf[word]; !exists {
		b.wordNumberOf[word] = len(b.words)
	}
	b.words = append(b.words, WordEntry{Word: word, Flags: flags, Count: count})
	return b
}

// AddPrefix stages a postponed-prefix entry.
func (b *Builder) AddPrefix(prefix string, flags trie.WordFlags) *Builder {
	b.prefixes = append(b.prefixes, WordEntry{Word: prefix, Flags: flags})
	return b
}

// AddKeepCase stages a word whose case must be preserved verbatim.
func (b *Builder) AddKeepCase(word string, flags trie.WordFlags) *Builder {
	b.keepcase = append(b.keepcase, WordEntry{Word: word, Flags: flags})
	return b
}

// AddRepRule appends a REP (affix-replacement) rule.
func (b *Builder) AddRepRule(from, to string) *Builder {
	b.repRules = append(b.repRules, RepRule{From: from, To: to})
	return b
}

// AddSalRepRule appends a sound-alike REP rule.
func (b *Builder) AddSalRepRule(from, to string) *Builder {
	b.salRepRules = append(b.salRepRules, RepRule{From: from, To: to})
	return b
}

// AddCompoundRule registers a compound flag-sequence restriction.
func (b *Builder) AddCompoundRule(pattern string, wildcard bool) *Builder {
	b.compoundRules = append(b.compoundRules, CompoundRule{Pattern: []byte(pattern), Wildcard: wildcard})
	return b
}

// SetCompoundFlags registers which compound flags are legal where.
func (b *Builder) SetCompoundFlags(all, start []byte) *Builder {
	for _, f := range all {
		b.compoundAllFlags[f] = true
		b.compoundFlags[f] = true
	}
	for _, f := range start {
		b.compoundStartFlags[f] = true
		b.compoundFlags[f] = true
	}
	return b
}

// SetCompoundLimits sets the scalar compound parameters.
func (b *Builder) SetCompoundLimits(minLen, max, sylMax int) *Builder {
	b.compoundMinLen, b.compoundMax, b.compoundSylMax = minLen, max, sylMax
	return b
}

// SetNoBreak marks the language as never emitting a space split;
// terminals are always treated as compound breaks instead.
func (b *Builder) SetNoBreak(v bool) *Builder { b.noBreak = v; return b }

// SetNoSplitSugs/SetNoCompoundSugs toggle score penalties applied at
// suggestion time rather than check time.
func (b *Builder) SetNoSplitSugs(v bool) *Builder    { b.noSplitSugs = v; return b }
func (b *Builder) SetNoCompoundSugs(v bool) *Builder { b.noCompoundSugs = v; return b }

// AddMapClass registers a set of mutually "similar" characters
// (spec.md §3 map_array/map_hash).
func (b *Builder) AddMapClass(chars string) *Builder {
	b.mapClasses = append(b.mapClasses, []rune(chars))
	return b
}

// SetRegionMask sets the active region bitmask.
func (b *Builder) SetRegionMask(mask uint16) *Builder { b.regionMask = mask; return b }

// SetSoundFold installs the language's phonetic fold function; if
// never called, DefaultSoundFold is used.
func (b *Builder) SetSoundFold(fn SoundFoldFunc) *Builder { b.soundFold = fn; return b }

// EnableSoundTrie folds every staged word through the language's
// SoundFold and builds a sound trie plus sug_buffer from the result.
// Must be called after every AddWord call it should cover.
func (b *Builder) EnableSoundTrie() *Builder {
	fold := b.soundFold
	if fold == nil {
		fold = DefaultSoundFold
	}
	seen := make(map[string]bool)
	for num, w := range b.words {
		folded := fold(w.Word, true)
		if folded == "" {
			continue
		}
		if !seen[folded] {
			seen[folded] = true
			b.soundEntries = append(b.soundEntries, folded)
		}
		b.soundToWords[folded] = append(b.soundToWords[folded], num)
	}
	sort.Strings(b.soundEntries)
	return b
}

// Build flattens every staged collection into a Language.
func (b *Builder) Build() *Language {
	lang := &Language{
		Name:               b.name,
		RepRules:           NewRepTable(b.repRules),
		SalRepRules:        NewRepTable(b.salRepRules),
		CompoundRules:      b.compoundRules,
		CompoundFlags:      b.compoundFlags,
		CompoundStartFlags: b.compoundStartFlags,
		CompoundAllFlags:   b.compoundAllFlags,
		CompoundMinLen:     b.compoundMinLen,
		CompoundMax:        b.compoundMax,
		CompoundSylMax:     b.compoundSylMax,
		NoSplitSugs:        b.noSplitSugs,
		NoBreak:            b.noBreak,
		NoCompoundSugs:     b.noCompoundSugs,
		MapClasses:         b.mapClasses,
		MapHash:            make(map[rune]int),
		WordCount:          make(map[string]int),
		RegionMask:         b.regionMask,
		SoundFold:          b.soundFold,
	}
	if lang.SoundFold == nil {
		lang.SoundFold = DefaultSoundFold
	}

	for classIdx, class := range b.mapClasses {
		for _, r := range class {
			if r < 256 {
				lang.MapArray[r] = classIdx + 1
			} else {
				lang.MapHash[r] = classIdx + 1
			}
		}
	}

	tb := trie.NewBuilder()
	lang.WordsByNumber = make([]string, len(b.words))
	lang.WordFlagsByNumber = make([]trie.WordFlags, len(b.words))
	for num, w := range b.words {
		tb.Add(w.Word, w.Flags)
		if w.Count > 0 {
			lang.WordCount[w.Word] = w.Count
		}
		lang.WordsByNumber[num] = w.Word
		lang.WordFlagsByNumber[num] = w.Flags
	}
	lang.FoldTrie = tb.Build()

	if len(b.prefixes) > 0 {
		pb := trie.NewBuilder()
		for _, p := range b.prefixes {
			pb.Add(p.Word, p.Flags)
		}
		lang.PrefixTrie = pb.Build()
	}

	if len(b.keepcase) > 0 {
		kb := trie.NewBuilder()
		for _, k := range b.keepcase {
			kb.Add(k.Word, k.Flags)
		}
		lang.KeepCaseTrie = kb.Build()
	}

	if len(b.soundEntries) > 0 {
		sb := trie.NewBuilder()
		lines := make([][]byte, len(b.soundEntries))
		for i, sound := range b.soundEntries {
			sb.Add(sound, trie.WordFlags(i))
			nums := append([]int(nil), b.soundToWords[sound]...)
			sort.Ints(nums)
			lines[i] = EncodeWordNumbers(nums)
		}
		lang.SoundTrie = sb.Build()
		lang.SugBuffer = NewSugBuffer(lines)
	}

	return lang
}
