// Package scores centralizes the bit-exact score constants of
// spec.md §6, so every component (the walk, the candidate store, the
// edit-distance scorers, the pipeline) references one definition.
package scores

const (
	Split   = 149 // split bad word
	SplitNo = 249 // split bad word with NOSPLITSUGS

	ICase  = 52  // slightly different case
	Region = 200 // word is for a different region
	Rare   = 180 // rare word

	Swap  = 75  // swap two characters
	Swap3 = 110 // swap two characters in three
	Rep   = 65  // REP replacement

	Subst   = 93 // substitute a character
	Similar = 33 // substitute a similar (MAP-equivalent) character
	Subcomp = 33 // substitute a composing character

	Del     = 94 // delete a character
	DelDup  = 66 // delete a duplicated character
	DelComp = 28 // delete a composing character

	Ins     = 96 // insert a character
	InsDup  = 67 // insert a duplicate character
	InsComp = 30 // insert a composing character

	NonWord = 103 // change non-word to word char
	File    = 30  // suggestion from a file/expr hook

	MaxInit = 350 // initial maximum score

	Common1 = 30 // subtracted for words seen before
	Common2 = 40 // subtracted for words often seen
	Common3 = 50 // subtracted for words very often seen
	Thres2  = 10 // word count threshold for Common2
	Thres3  = 100 // word count threshold for Common3

	SFMax1 = 200 // maximum score for the first soundalike try
	SFMax2 = 300 // maximum score for the second soundalike try
	SFMax3 = 400 // maximum score for the third soundalike try

	Big      = Ins * 3 // big difference
	MaxMax   = 999999  // accept any score
	LimitMax = 350     // default limit for edit_score_limit
	EditMin  = Similar // smallest possible non-zero edit cost

	SugCleanCountLowBound  = 130 // max_count below this uses a fixed clean count
	SugCleanCountFixed     = 150
	SugCleanCountHeadroom  = 20 // otherwise: max_count + this
	SugMaxCountHeadroom    = 50 // SUG_MAX_COUNT = SUG_CLEAN_COUNT + this
)

// Rescore combines a word-edit score and a soundalike score:
// RESCORE(w, s) = (3w + s) / 4.
func Rescore(word, sound int) int { return (3*word + sound) / 4 }

// MaxScore inverts Rescore for use as a pruning bound:
// MAXSCORE(w, s) = (4w - s) / 3.
func MaxScore(word, sound int) int { return (4*word - sound) / 3 }

// SugCleanCount returns SUG_CLEAN_COUNT for a given max_count
// (spec.md §4.4).
func SugCleanCount(maxCount int) int {
	if maxCount < SugCleanCountLowBound {
		return SugCleanCountFixed
	}
	return maxCount + SugCleanCountHeadroom
}

// SugMaxCount returns SUG_MAX_COUNT for a given max_count.
func SugMaxCount(maxCount int) int {
	return SugCleanCount(maxCount) + SugMaxCountHeadroom
}
