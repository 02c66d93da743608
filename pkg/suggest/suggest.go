/*
Package suggest implements find_suggest, the pipeline that
orchestrates the trie walk, the sound-alike pass and the rescoring
step into the engine's single public entry point (spec.md §4.7).
*/
package suggest

import (
	"context"
	"strings"

	"github.com/corvisa/spellsuggest/internal/wordset"
	"github.com/corvisa/spellsuggest/pkg/candidate"
	"github.com/corvisa/spellsuggest/pkg/caseclass"
	"github.com/corvisa/spellsuggest/pkg/dictionary"
	"github.com/corvisa/spellsuggest/pkg/editdist"
	"github.com/corvisa/spellsuggest/pkg/scores"
	"github.com/corvisa/spellsuggest/pkg/soundscore"
	"github.com/corvisa/spellsuggest/pkg/walk"
)

// Suggestion is one final, ranked correction returned to the caller
// (spec.md §6 "suggest(...) -> list of (word, orig_len, score)").
type Suggestion struct {
	Word    string
	OrigLen int
	Score   int
}

// soundDoneMemo is the per-query sl_sounddone memo (spec.md §9):
// sound-folded word -> best score seen, kept out of Language since it
// must not be shared across concurrent queries (spec.md §5).
type soundDoneMemo map[string]int

// Engine runs find_suggest against a fixed set of loaded languages.
type Engine struct {
	Languages []*dictionary.Language
}

// NewEngine returns an Engine over the given languages, in priority
// order (the first sound-folding language becomes default_sal_lang).
func NewEngine(languages ...*dictionary.Language) *Engine {
	return &Engine{Languages: languages}
}

// Suggest runs the full pipeline for bad and returns up to
// opt.MaxCount ranked corrections (spec.md §4.7).
func (e *Engine) Suggest(ctx context.Context, bad string, opt Options) []Suggestion {
	if opt.MaxCount <= 0 {
		opt.MaxCount = 25
	}
	if opt.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opt.Timeout)
		defer cancel()
	}

	store := candidate.NewWithLimit(opt.MaxCount, opt.Limit)
	banned := wordset.New()

	badFlags := caseclass.Captype(bad)
	if opt.NeedCap {
		badFlags |= caseclass.OneCap
	}

	if opt.BanBad {
		banned.Add(strings.ToLower(bad))
	}

	// Step 3: an all-lowercase bad word that a loaded language's fold
	// trie holds as a word gets a capitalized alternative.
	if badFlags == 0 && len(bad) > 0 {
		for _, lang := range e.Languages {
			if lang == nil || lang.FoldTrie.Empty() {
				continue
			}
			n, ok := lang.FoldTrie.Root, true
			for i := 0; i < len(bad) && ok; i++ {
				n, ok = lang.FoldTrie.Descend(n, bad[i])
			}
			if ok && len(lang.FoldTrie.Terminals(n)) > 0 {
				store.Insert(bad, strings.ToUpper(bad[:1])+bad[1:], scores.ICase, scores.ICase, false, false, nil)
				break
			}
		}
	}

	// Step 5: "w w" (equal, whitespace-separated halves).
	if half, ok := repeatedWordHalf(bad); ok {
		store.Insert(bad, half, scores.Rescore(scores.Rep, 0), scores.Rescore(scores.Rep, 0), false, false, nil)
	}

	// Step 6: run the fold-trie walk for every loaded language.
	for _, lang := range e.Languages {
		if lang == nil || lang.FoldTrie.Empty() {
			continue
		}
		walk.Run(ctx, walk.Options{
			Lang:        lang,
			Trie:        lang.FoldTrie,
			BadWord:     []rune(strings.ToLower(bad)),
			BadFlags:    badFlags,
			OrigBadWord: bad,
			Store:       store,
		})
	}

	if opt.ExprHook != nil {
		for _, h := range opt.ExprHook(bad) {
			store.Insert(bad, h.Word, h.Score, h.Score, false, false, nil)
		}
	}
	if opt.FileHook != nil {
		for _, h := range opt.FileHook(bad) {
			store.Insert(bad, h.Word, h.Score, h.Score, false, false, nil)
		}
	}

	var defaultSalLang *dictionary.Language
	for _, lang := range e.Languages {
		if lang != nil && lang.SoundTrie != nil && !lang.SoundTrie.Empty() {
			defaultSalLang = lang
			break
		}
	}

	// Step 7: SPS_DOUBLE pre-populates the secondary list with the
	// current primary candidates' soundfold scores, before the
	// sound-alike walk (step 8) adds its own reconstructions to primary.
	if opt.Mode == Double && defaultSalLang != nil {
		e.populateSecondary(store, defaultSalLang, bad)
	}

	if opt.Mode != Fast && defaultSalLang != nil {
		e.soundAlikePass(ctx, store, bad, badFlags)
	}

	if opt.Mode == Best || opt.Mode == Double {
		e.rescoreSuggestions(store, defaultSalLang, bad)
	}

	if opt.Mode == Double && defaultSalLang != nil {
		e.scoreCombine(store, defaultSalLang, bad)
	}

	finalized := store.Finalize()
	out := make([]Suggestion, 0, len(finalized))
	for _, s := range finalized {
		if banned.Contains(strings.ToLower(s.Word)) {
			continue
		}
		out = append(out, Suggestion{Word: s.Word, OrigLen: s.OrigLen, Score: s.Score})
	}
	if len(out) > opt.MaxCount {
		out = out[:opt.MaxCount]
	}
	return out
}

// repeatedWordHalf detects spec.md's "w w" special case: a bad word
// that's two equal, whitespace-separated halves.
func repeatedWordHalf(bad string) (string, bool) {
	parts := strings.Fields(bad)
	if len(parts) == 2 && parts[0] == parts[1] {
		return parts[0], true
	}
	return "", false
}

// soundAlikePass runs the sound trie walk with progressively relaxed
// score ceilings until enough candidates accumulate (spec.md §4.7
// step 8), reconstructing real dictionary words from each sound-trie
// match via add_sound_suggest (walk.commitSoundMatch).
func (e *Engine) soundAlikePass(ctx context.Context, store *candidate.Store, bad string, badFlags caseclass.Class) {
	limits := []int{scores.SFMax1, scores.SFMax2, scores.SFMax3}
	cleanCount := store.CleanCount()

	for _, lang := range e.Languages {
		if lang == nil || lang.SoundTrie == nil || lang.SoundTrie.Empty() {
			continue
		}
		// memo mirrors the original's su_sounddone/sl_sounddone: a
		// per-language memo, not a per-query one, since two languages
		// sound-folding "bad" to the same string must still each get
		// their own SoundTrie walked.
		memo := soundDoneMemo{}
		salBad := lang.SoundFold(bad, true)
		for _, limit := range limits {
			if len(store.Primary) >= cleanCount {
				break
			}
			if memoized, ok := memo[salBad]; ok && memoized <= limit {
				continue
			}
			store.LimitSFMax(limit)
			walk.Run(ctx, walk.Options{
				Lang:        lang,
				Trie:        lang.SoundTrie,
				SoundFold:   true,
				ApplySFMax:  true,
				BadWord:     []rune(salBad),
				BadFlags:    badFlags,
				OrigBadWord: bad,
				Store:       store,
			})
			memo[salBad] = limit
		}
	}
}

// populateSecondary is step 7 of find_suggest (spec.md §4.7): for
// SPS_DOUBLE, every primary candidate found so far gets a parallel
// secondary-list entry scored by sound-alike similarity instead of
// edit distance, so score_combine has two independently-ranked lists
// to interleave at the end of the pipeline.
func (e *Engine) populateSecondary(store *candidate.Store, lang *dictionary.Language, bad string) {
	for _, s := range store.Primary {
		origLen := s.OrigLen
		if origLen > len(bad) {
			origLen = len(bad)
		}
		soundScore := stpSalScore(lang, s.Word, bad, origLen)
		store.InsertSecondary(bad[:origLen], s.Word, soundScore, soundScore, false, true, nil)
	}
}

// rescoreSuggestions combines each candidate's edit score with its
// sound-alike score via RESCORE (spec.md §4.7 step 9, stp_sal_score).
func (e *Engine) rescoreSuggestions(store *candidate.Store, lang *dictionary.Language, bad string) {
	if lang == nil {
		return
	}
	for i := range store.Primary {
		s := &store.Primary[i]
		if s.HadBonus {
			continue
		}
		soundScore := stpSalScore(lang, s.Word, bad, s.OrigLen)
		s.Score = scores.Rescore(s.Score, soundScore)
	}
}

// stpSalScore sound-folds the candidate word (concatenating any
// trailing bad-word slice the candidate didn't cover) and scores it
// against the bad word's own sound fold.
func stpSalScore(lang *dictionary.Language, word, bad string, origLen int) int {
	tail := ""
	if origLen < len(bad) {
		tail = bad[origLen:]
	}
	goodSound := lang.SoundFold(word+tail, true)
	badSound := lang.SoundFold(bad, true)
	return soundscore.Score(badSound, goodSound)
}

// scoreCombine implements the SPS_DOUBLE path: rescale both lists by
// their edit-distance alt-score, interleave, and let Finalize dedup.
func (e *Engine) scoreCombine(store *candidate.Store, lang *dictionary.Language, bad string) {
	for i := range store.Primary {
		s := &store.Primary[i]
		alt := editdist.Score(bad, s.Word, foldEqual, similarFor(lang))
		s.Score = (3*s.Score + alt) / 4
		s.AltScore = alt
	}
	for i := range store.Secondary {
		s := &store.Secondary[i]
		alt := editdist.Score(bad, s.Word, foldEqual, similarFor(lang))
		s.Score = (7*s.Score + alt) / 8
		s.AltScore = alt
	}
}

func foldEqual(a, b rune) bool {
	return strings.EqualFold(string(a), string(b))
}

func similarFor(lang *dictionary.Language) editdist.SimilarFunc {
	if lang == nil {
		return nil
	}
	return lang.IsSimilar
}
