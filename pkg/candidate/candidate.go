/*
Package candidate implements the suggestion store the walk and the
sound-alike pass write into: two growable lists, one fed by
edit-distance candidates and one by sound-alike candidates, both
aggressively truncated by score: a list that grows past
SUG_CLEAN_COUNT+50 is sorted and cut back to its best SUG_CLEAN_COUNT
entries (spec.md §4.4).

The store deliberately stays small and simple: a slice plus a linear
scan, not a map, because entries are compared on (word, orig_len) and
re-scored in place rather than looked up by key.
*/
package candidate

import (
	"strings"

	"golang.org/x/exp/slices"

	"github.com/corvisa/spellsuggest/pkg/scores"
)

// Suggestion is one candidate spelling, either from the edit-distance
// walk (primary) or the sound-alike pass (secondary).
type Suggestion struct {
	Word     string
	OrigLen  int
	Score    int
	AltScore int
	HadBonus bool
}

// Store holds the primary and secondary candidate lists for one query.
type Store struct {
	Primary   []Suggestion
	Secondary []Suggestion

	maxCount   int
	cleanCount int

	maxScore   int
	sfMaxScore int
}

// New creates an empty Store sized for maxCount final suggestions
// (spec.md §4.4 SUG_CLEAN_COUNT/SUG_MAX_COUNT formulas), starting the
// prune ceiling at scores.MaxInit (spec.md §3/§6 SCORE_MAXINIT) rather
// than scores.MaxMax: the walk prunes against this value from its very
// first call, which is what keeps it polynomial instead of enumerating
// the whole trie.
func New(maxCount int) *Store {
	return NewWithLimit(maxCount, scores.MaxInit)
}

// NewWithLimit is New with an explicit starting prune ceiling, the Go
// counterpart of spec.md §6 Options.limit overriding SCORE_MAXINIT. A
// non-positive limit falls back to scores.MaxInit. sf_max_score starts
// at three times the word-score ceiling, matching the original's
// su_sfmaxscore = SCORE_MAXINIT * 3 before the sound-alike pass
// tightens it through LimitSFMax.
func NewWithLimit(maxCount, limit int) *Store {
	if limit <= 0 {
		limit = scores.MaxInit
	}
	return &Store{
		maxCount:   maxCount,
		cleanCount: scores.SugCleanCount(maxCount),
		maxScore:   limit,
		sfMaxScore: limit * 3,
	}
}

// LimitSFMax tightens the secondary-list prune threshold to at most
// limit, used by the sound-alike pass's progressively relaxed
// SFMAX1/2/3 ceilings (spec.md §4.7 step 8).
func (s *Store) LimitSFMax(limit int) {
	if limit < s.sfMaxScore {
		s.sfMaxScore = limit
	}
}

// CleanCount reports SUG_CLEAN_COUNT for this store, the threshold
// the sound-alike pass checks primary length against (spec.md §4.7
// step 8).
func (s *Store) CleanCount() int { return s.cleanCount }

// MaxScore returns the current prune threshold the walk should use to
// skip work that can no longer make the cut.
func (s *Store) MaxScore(applySFMax bool) int {
	if applySFMax {
		return s.sfMaxScore
	}
	return s.maxScore
}

// Insert adds or merges a candidate into the primary list, applying
// the minimize/dedup/truncate sequence spec.md §4.4 describes.
// badWord is the segment of the original bad word this suggestion
// replaces; its length is stored as OrigLen. Minimization only decides
// whether the candidate is a no-op: the stored Word and OrigLen are the
// unminimized ones, and (Word, OrigLen) is the key duplicates merge on.
func (s *Store) Insert(badWord, word string, score, altScore int, hadBonus bool, applySFMax bool, bonus func() int) {
	s.insertInto(&s.Primary, badWord, word, score, altScore, hadBonus, applySFMax, bonus)
}

// InsertSecondary is the sound-alike-list counterpart of Insert.
func (s *Store) InsertSecondary(badWord, word string, score, altScore int, hadBonus bool, applySFMax bool, bonus func() int) {
	s.insertInto(&s.Secondary, badWord, word, score, altScore, hadBonus, applySFMax, bonus)
}

func (s *Store) insertInto(list *[]Suggestion, badWord, word string, score, altScore int, hadBonus bool, applySFMax bool, bonus func() int) {
	if mb, mw := minimize(badWord, word); mw == "" && mb == "" {
		return
	}
	origLen := len(badWord)

	for i := range *list {
		e := &(*list)[i]
		if e.Word != word || e.OrigLen != origLen {
			continue
		}
		if e.HadBonus != hadBonus && bonus != nil {
			if !e.HadBonus {
				e.Score -= bonus()
				e.HadBonus = true
			} else {
				score -= bonus()
				hadBonus = true
			}
		}
		if score < e.Score {
			e.Score = score
			e.AltScore = altScore
		}
		return
	}

	*list = append(*list, Suggestion{
		Word:     word,
		OrigLen:  origLen,
		Score:    score,
		AltScore: altScore,
		HadBonus: hadBonus,
	})

	if len(*list) > s.cleanCount+50 {
		s.cleanup(list, applySFMax)
	}
}

// minimize backs badWord and word off together while both end in the
// same trailing byte, so e.g. suggesting "the" to replace a bad "the"
// never records a spurious no-op candidate.
func minimize(badWord, word string) (string, string) {
	for len(badWord) > 0 && len(word) > 0 && badWord[len(badWord)-1] == word[len(word)-1] {
		badWord = badWord[:len(badWord)-1]
		word = word[:len(word)-1]
	}
	return badWord, word
}

// cleanup sorts by (score, alt_score, word-case-insensitive) ascending,
// drops everything past cleanCount, and records the new prune
// threshold from the tail of what's kept (spec.md §4.4 step 4).
func (s *Store) cleanup(list *[]Suggestion, applySFMax bool) {
	slices.SortFunc(*list, func(a, b Suggestion) int {
		if a.Score != b.Score {
			return a.Score - b.Score
		}
		if a.AltScore != b.AltScore {
			return a.AltScore - b.AltScore
		}
		return strings.Compare(strings.ToLower(a.Word), strings.ToLower(b.Word))
	})

	if len(*list) > s.cleanCount {
		kept := (*list)[:s.cleanCount]
		tailScore := kept[len(kept)-1].Score
		if applySFMax {
			s.sfMaxScore = tailScore
		} else {
			s.maxScore = tailScore
		}
		*list = kept
	}
}

// Finalize runs a last cleanup pass and returns the merged, truncated
// suggestion list capped at maxCount (called once the walk and the
// sound-alike pass are both done).
func (s *Store) Finalize() []Suggestion {
	s.cleanup(&s.Primary, false)
	s.cleanup(&s.Secondary, true)

	merged := make([]Suggestion, 0, len(s.Primary)+len(s.Secondary))
	merged = append(merged, s.Primary...)
	merged = append(merged, s.Secondary...)

	seen := make(map[string]int, len(merged))
	out := merged[:0]
	for _, sug := range merged {
		if idx, ok := seen[sug.Word]; ok {
			if sug.Score < out[idx].Score {
				out[idx] = sug
			}
			continue
		}
		seen[sug.Word] = len(out)
		out = append(out, sug)
	}

	slices.SortFunc(out, func(a, b Suggestion) int {
		if a.Score != b.Score {
			return a.Score - b.Score
		}
		if a.AltScore != b.AltScore {
			return a.AltScore - b.AltScore
		}
		return strings.Compare(strings.ToLower(a.Word), strings.ToLower(b.Word))
	})
	if len(out) > s.maxCount {
		out = out[:s.maxCount]
	}
	return out
}
