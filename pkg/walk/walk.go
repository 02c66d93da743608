/*
Package walk implements the trie-guided candidate search (spec.md
§4.6): given a bad word and a dictionary's fold trie (or sound trie,
in soundfold mode), it descends the trie and the bad word in lockstep,
branching at every point an edit (delete, insert, substitute, swap,
REP-rule replacement) could repair a mismatch, and commits every
affordable terminal it reaches to a candidate.Store.

The reference design keeps an explicit frame stack so the walk can
suspend mid-descent; this port instead recurses, since Go's call stack
already gives each live frame a home and MAX_WORD_LEN bounds the
recursion depth the same way it bounds the explicit stack. Each
recursive call corresponds to one state transition in spec.md's table:
STATE_PLAIN is the "for each non-zero child" loop below, STATE_DEL the
deletion branch, STATE_SWAP/SWAP3 the two- and three-character
rearrangement branches, STATE_REP the REP-rule branch, and
STATE_START's split/compound restart is trySplitOrCompound recursing
back to the trie's root with an adjusted score and word, instead of an
explicit SPLITUNDO frame unwinding the stack.
*/
package walk

import (
	"context"
	"unicode"

	"github.com/corvisa/spellsuggest/pkg/candidate"
	"github.com/corvisa/spellsuggest/pkg/caseclass"
	"github.com/corvisa/spellsuggest/pkg/dictionary"
	"github.com/corvisa/spellsuggest/pkg/editdist"
	"github.com/corvisa/spellsuggest/pkg/scores"
	"github.com/corvisa/spellsuggest/pkg/trie"
)

// MaxWordLen bounds both recursion depth and the longest bad word the
// walk will accept: Run truncates a longer bad word to MaxWordLen-1
// runes (spec.md §4.6 MAX_WORD_LEN).
const MaxWordLen = 176

// deadlineCheckInterval is how many visited nodes pass between
// cooperative cancellation checks (spec.md §4.6 "every ~1000 iterations").
const deadlineCheckInterval = 1000

// maxCompoundParts bounds a compound chain's recursion depth when a
// language sets no explicit CompoundMax, so a pathological rule set
// can't recurse past what MaxWordLen would otherwise allow.
const maxCompoundParts = 8

// Options configures one walk over one trie.
type Options struct {
	Lang      *dictionary.Language
	Trie      *trie.Trie // which trie to walk: fold, or sound in soundfold mode
	SoundFold bool

	BadWord []rune
	// BadFlags is the query's captype classification (spec.md §4.8
	// "bad_flags"), used to reproduce the bad word's case shape onto
	// plain commits and add_sound_suggest reconstructions alike.
	BadFlags caseclass.Class
	// OrigBadWord is the caller's original (non-soundfolded) bad word;
	// Run fills it from BadWord when it is empty. Every committed
	// candidate is recorded as a replacement for this word. In soundfold
	// mode BadWord carries the sound-folded form instead, so
	// add_sound_suggest also uses this to score reconstructed words by
	// ordinary edit distance against what the user actually typed.
	OrigBadWord string

	Store      *candidate.Store
	ApplySFMax bool // whether Store.MaxScore/cleanup should use the sf_max_score side
}

// walker carries the mutable state threaded through the recursion:
// an iteration counter for the deadline check and the context used to
// detect cancellation/timeout.
type walker struct {
	ctx context.Context
	opt Options

	iterations int
	aborted    bool
}

// Run performs the full trie walk described by opt, committing every
// affordable candidate into opt.Store. Returns early (with whatever
// was already committed) if ctx is canceled or its deadline passes.
func Run(ctx context.Context, opt Options) {
	if opt.Trie == nil || opt.Trie.Empty() {
		return
	}
	if len(opt.BadWord) > MaxWordLen-1 {
		opt.BadWord = opt.BadWord[:MaxWordLen-1]
	}
	if opt.OrigBadWord == "" {
		opt.OrigBadWord = string(opt.BadWord)
	}
	w := &walker{ctx: ctx, opt: opt}
	w.descend(opt.Trie.Root, 0, 0, nil, false, 0, nil, nil)

	// Prefix tree: a postponed-prefix word is stripped literally (no
	// fuzzy edits against it) before the ordinary walk resumes from the
	// main trie's root, carrying the prefix's flags so the eventual
	// terminal can validate against them (spec.md §4.6 "Prefix tree
	// handling").
	if !opt.SoundFold && opt.Lang != nil && opt.Lang.PrefixTrie != nil && !opt.Lang.PrefixTrie.Empty() {
		w.descendPrefixTree(opt.Lang.PrefixTrie.Root, 0)
	}
}

// descendPrefixTree walks the prefix trie by literal byte match against
// the bad word only: postponed prefixes are known-good affixes, not
// something the edit-distance search should also try to repair.
// Reaching a prefix terminal resumes the ordinary descend from the
// main trie's root for the remaining bad word, with that terminal's
// flags recorded as the active prefix flags.
func (w *walker) descendPrefixTree(node uint32, fIdx int) {
	prefix := w.opt.Lang.PrefixTrie
	bad := w.opt.BadWord

	for _, flags := range prefix.Terminals(node) {
		pf := flags
		prefixWord := append([]rune(nil), bad[:fIdx]...)
		w.descend(w.opt.Trie.Root, fIdx, 0, prefixWord, false, 0, nil, &pf)
	}
	if fIdx >= len(bad) {
		return
	}
	if child, ok := prefix.Descend(node, byte(bad[fIdx])); ok {
		w.descendPrefixTree(child, fIdx+1)
	}
}

// descend is STATE_START/PLAIN/ENDNUL/DEL/INS/SWAP/REP combined: it
// visits node, having matched fIdx runes of the bad word and spent
// score so far, with tword holding the candidate word built up so
// far. delIdx/hasDel records a just-deleted bad-word rune so INS
// doesn't immediately re-insert it (spec.md's DID_DEL guard).
// compFlags holds the compound flags accumulated by earlier parts of
// a compound chain, nil outside of one. prefixFlags, when non-nil, is
// the postponed-prefix terminal's flags this descent resumed under,
// validated against the eventual word terminal by commit.
func (w *walker) descend(node uint32, fIdx int, score int, tword []rune, hasDel bool, delIdx rune, compFlags []byte, prefixFlags *trie.WordFlags) {
	if w.aborted {
		return
	}
	w.iterations++
	if w.iterations%deadlineCheckInterval == 0 {
		select {
		case <-w.ctx.Done():
			w.aborted = true
			return
		default:
		}
	}
	if len(tword) >= MaxWordLen-1 {
		return
	}
	maxScore := w.opt.Store.MaxScore(w.opt.ApplySFMax)
	if score >= maxScore {
		return
	}

	t := w.opt.Trie
	bad := w.opt.BadWord

	// STATE_START/NOPREFIX: commit at every terminal reached once the
	// bad word is fully consumed. If the bad word still has runes left,
	// a terminal here is instead a candidate split/compound boundary.
	if fIdx >= len(bad) {
		for _, flags := range t.Terminals(node) {
			w.commit(tword, fIdx, score, flags, prefixFlags)
		}
	} else if w.opt.Lang != nil && !w.opt.SoundFold {
		for _, flags := range t.Terminals(node) {
			w.trySplitOrCompound(fIdx, score, tword, compFlags, flags)
		}
	}

	// STATE_ENDNUL/DEL: if the bad word still has runes left, try
	// deleting the next one from it without consuming a trie byte.
	if fIdx < len(bad) {
		delCost := scores.Del
		if fIdx+1 < len(bad) && bad[fIdx] == bad[fIdx+1] {
			delCost = scores.DelDup
		}
		if score+delCost < maxScore {
			w.descend(node, fIdx+1, score+delCost, tword, true, bad[fIdx], compFlags, prefixFlags)
		}
	}

	// STATE_PLAIN/INS: for each non-zero child byte, either match it
	// against the bad word's current rune (PLAIN) or insert it as an
	// extra character (INS) when it doesn't match.
	t.EnumerateChildren(node, func(c byte, child uint32) bool {
		r := rune(c)
		nextTword := append(append([]rune(nil), tword...), r)

		if fIdx < len(bad) && bad[fIdx] == r {
			// PLAIN: exact match, no score added.
			w.descend(child, fIdx+1, score, nextTword, false, 0, compFlags, prefixFlags)
		} else if fIdx < len(bad) {
			// PLAIN: substitution.
			subCost := scores.Subst
			if w.opt.Lang != nil && w.opt.Lang.IsSimilar(bad[fIdx], r) {
				subCost = scores.Similar
			}
			if score+subCost < maxScore {
				w.descend(child, fIdx+1, score+subCost, nextTword, false, 0, compFlags, prefixFlags)
			}
		}

		if !hasDel || delIdx != r {
			insCost := scores.Ins
			if len(tword) > 0 && tword[len(tword)-1] == r {
				insCost = scores.InsDup
			}
			if score+insCost < maxScore {
				w.descend(child, fIdx, score+insCost, nextTword, hasDel, delIdx, compFlags, prefixFlags)
			}
		}
		return true
	})

	// STATE_SWAP/UNSWAP: try swapping the next two bad-word runes.
	if fIdx+1 < len(bad) && bad[fIdx] != bad[fIdx+1] {
		swapped := append([]rune(nil), bad...)
		swapped[fIdx], swapped[fIdx+1] = swapped[fIdx+1], swapped[fIdx]
		if score+scores.Swap < maxScore {
			saved := w.opt.BadWord
			w.opt.BadWord = swapped
			w.descend(node, fIdx, score+scores.Swap, tword, hasDel, delIdx, compFlags, prefixFlags)
			w.opt.BadWord = saved
		}
	}

	// STATE_SWAP3/UNSWAP3/UNROT3L/UNROT3R: try the three-character
	// rearrangements of the next three bad-word runes (rotate left,
	// rotate right, swap the outer two), each restored afterward.
	if fIdx+2 < len(bad) && score+scores.Swap3 < maxScore {
		a, b, c := bad[fIdx], bad[fIdx+1], bad[fIdx+2]
		rearrangements := [][3]rune{
			{b, c, a}, // rotate left
			{c, a, b}, // rotate right
			{c, b, a}, // swap outer two
		}
		for _, r := range rearrangements {
			if r[0] == a && r[1] == b && r[2] == c {
				continue
			}
			rearranged := append([]rune(nil), bad...)
			rearranged[fIdx], rearranged[fIdx+1], rearranged[fIdx+2] = r[0], r[1], r[2]
			saved := w.opt.BadWord
			w.opt.BadWord = rearranged
			w.descend(node, fIdx, score+scores.Swap3, tword, hasDel, delIdx, compFlags, prefixFlags)
			w.opt.BadWord = saved
		}
	}

	// STATE_REP_INI/REP/REP_UNDO: try every REP rule whose From starts
	// at the bad word's current position.
	var repTable *dictionary.RepTable
	if w.opt.Lang != nil {
		repTable = w.opt.Lang.RepRules
		if w.opt.SoundFold {
			repTable = w.opt.Lang.SalRepRules
		}
	}
	if repTable != nil && fIdx < len(bad) {
		for _, rule := range repTable.Lookup(byte(bad[fIdx])) {
			from := []rune(rule.From)
			if fIdx+len(from) > len(bad) {
				continue
			}
			if !runesMatch(bad[fIdx:fIdx+len(from)], from) {
				continue
			}
			if score+scores.Rep >= maxScore {
				continue
			}
			replaced := append(append(append([]rune(nil), bad[:fIdx]...), []rune(rule.To)...), bad[fIdx+len(from):]...)
			saved := w.opt.BadWord
			w.opt.BadWord = replaced
			w.descend(node, fIdx, score+scores.Rep, tword, hasDel, delIdx, compFlags, prefixFlags)
			w.opt.BadWord = saved
		}
	}
}

// trySplitOrCompound is STATE_START's split/compound branch: node
// carries a complete dictionary word at fIdx, but the bad word isn't
// exhausted yet, so this tries continuing as either a compound
// (flags permitting, no space charged) or a plain two-word split (a
// space charged), restarting descent from the trie's root for the
// remainder of the bad word (spec.md §4.6 STATE_START/SPLITUNDO, §4.8
// can_be_compound).
//
// CompoundMinLen is checked against the accumulated candidate word as
// a whole rather than per compound part, a simplification since this
// port doesn't track individual part boundaries within tword.
func (w *walker) trySplitOrCompound(fIdx int, score int, tword []rune, compFlags []byte, flags trie.WordFlags) {
	if flags.Has(trie.WFBanned) || flags.Has(trie.WFNoSuggest) {
		return
	}
	lang := w.opt.Lang
	if lang == nil || lang.NoBreak {
		return
	}
	if len(compFlags) >= maxCompoundParts {
		return
	}
	if lang.CompoundMax > 0 && len(compFlags) >= lang.CompoundMax {
		return
	}
	if lang.CompoundMinLen > 0 && len(tword) < lang.CompoundMinLen {
		return
	}

	maxScore := w.opt.Store.MaxScore(w.opt.ApplySFMax)
	compFlag := flags.CompoundFlag()
	atStart := len(compFlags) == 0

	if compFlag != 0 && caseclass.CanBeCompound(lang, compFlags, compFlag, atStart) {
		if score+scores.Split < maxScore {
			nextFlags := append(append([]byte(nil), compFlags...), compFlag)
			w.descend(w.opt.Trie.Root, fIdx, score+scores.Split, tword, false, 0, nextFlags, nil)
		}
	}

	if lang.NoCompoundSugs && compFlag != 0 {
		return
	}
	splitCost := scores.Split
	if lang.NoSplitSugs {
		splitCost = scores.SplitNo
	}
	if score+splitCost < maxScore {
		spaced := append(append([]rune(nil), tword...), ' ')
		w.descend(w.opt.Trie.Root, fIdx, score+splitCost, spaced, false, 0, nil, nil)
	}
}

func runesMatch(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// commit applies the region/rarity/case penalties and inserts the
// finished candidate into the store (spec.md §4.6 "Commit rule").
// prefixFlags, when non-nil, is the active postponed-prefix terminal's
// flags; the word terminal must validate against it before committing.
//
// In soundfold mode, node's terminal doesn't carry WordFlags at all:
// it carries the sound-trie word number (spec.md §4.7
// add_sound_suggest), so that path is delegated to commitSoundMatch
// instead of treated as an ordinary word terminal.
func (w *walker) commit(tword []rune, fIdx int, score int, flags trie.WordFlags, prefixFlags *trie.WordFlags) {
	if w.opt.SoundFold {
		w.commitSoundMatch(int(flags), score)
		return
	}

	if prefixFlags != nil {
		adjusted, ok := caseclass.ValidWordPrefix(*prefixFlags, flags)
		if !ok {
			return
		}
		flags = adjusted
	}
	if flags.Has(trie.WFBanned) || flags.Has(trie.WFNoSuggest) {
		return
	}
	if flags.Has(trie.WFRare) {
		score += scores.Rare
	}
	if w.opt.Lang != nil && flags.Region() != 0 && w.opt.Lang.RegionMask != 0 && flags.Region()&w.opt.Lang.RegionMask == 0 {
		score += scores.Region
	}

	maxScore := w.opt.Store.MaxScore(w.opt.ApplySFMax)
	if score > maxScore {
		return
	}

	folded := string(tword)
	if w.opt.Lang != nil {
		score -= w.opt.Lang.CommonWordBonus(folded)
	}

	word := w.caseRestore(folded, flags)
	// A commit only happens once the whole bad word is consumed, so the
	// candidate replaces all of the caller's bad word, not the copy in
	// w.opt.BadWord that SWAP/SWAP3/REP rewrite during the descent.
	w.opt.Store.Insert(w.opt.OrigBadWord, word, score, score, false, w.opt.ApplySFMax, nil)
}

// caseRestore reproduces the bad word's case shape onto folded, the
// canonical (folded) dictionary spelling, unless the word is flagged
// KEEPCAP, in which case its verbatim-cased form is looked up in the
// keepcase trie instead (spec.md §4.8 make_case_word/find_keepcap_word).
func (w *walker) caseRestore(folded string, flags trie.WordFlags) string {
	if flags.Has(trie.WFKeepCap) {
		if kc, ok := caseclass.FindKeepCapWord(w.opt.Lang, folded); ok {
			return kc
		}
		return folded
	}
	return caseclass.MakeCaseWord(folded, w.opt.BadFlags)
}

// commitSoundMatch is add_sound_suggest (spec.md §4.7): soundWordNum is
// a sound-trie word number reached by the walk; every fold-trie word
// number SugBuffer lists for it is reconstructed, cased, scored by
// ordinary edit distance against the caller's original bad word, and
// inserted into the primary list with HadBonus set (the phonetic pass
// already vouches for it, so rescoreSuggestions skips re-scoring it).
func (w *walker) commitSoundMatch(soundWordNum int, score int) {
	lang := w.opt.Lang
	if lang == nil || lang.SugBuffer == nil {
		return
	}
	maxScore := w.opt.Store.MaxScore(w.opt.ApplySFMax)
	if score >= maxScore {
		return
	}
	for _, num := range lang.SugBuffer.WordNumbers(soundWordNum) {
		if num < 0 || num >= len(lang.WordsByNumber) {
			continue
		}
		wflags := lang.WordFlagsByNumber[num]
		if wflags.Has(trie.WFBanned) || wflags.Has(trie.WFNoSuggest) {
			continue
		}
		word := w.caseRestore(lang.WordsByNumber[num], wflags)

		editScore := editdist.ScoreLimit(w.opt.OrigBadWord, word, maxScore, foldEqualRune, lang.IsSimilar)
		if editScore >= maxScore {
			continue
		}
		w.opt.Store.Insert(w.opt.OrigBadWord, word, editScore, editScore, true, w.opt.ApplySFMax, nil)
	}
}

func foldEqualRune(a, b rune) bool {
	return unicode.ToLower(a) == unicode.ToLower(b)
}
