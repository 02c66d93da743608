package suggest

import "time"

// Mode selects how hard the pipeline works to find sound-alike
// candidates (spec.md §4.7 step 7-8).
type Mode int

const (
	// Fast skips the sound-alike pass entirely.
	Fast Mode = iota
	// Best runs the sound-alike pass and rescores with it.
	Best
	// Double also computes soundfold scores for the edit-based
	// candidates already found, combining via score_combine.
	Double
)

// Options configures one Suggest call (spec.md §6 "Options").
type Options struct {
	Mode     Mode
	MaxCount int
	Timeout  time.Duration
	// Limit overrides the candidate store's starting prune ceiling
	// (spec.md §6 Options.limit, SCORE_MAXINIT). Zero/negative means
	// "use the default", scores.MaxInit.
	Limit int

	// BanBad, if true, interns the input bad word into the banned set
	// before running so it can never be suggested back to the caller.
	BanBad bool
	// NeedCap, if true, ORs ONECAP into bad_flags regardless of what
	// Captype infers, matching a caller context (e.g. start of
	// sentence) that always wants a capitalized correction considered.
	NeedCap bool

	// ExprHook/FileHook are opaque extra candidate producers that feed
	// the same insertion pipeline as the trie walk (spec.md §6).
	ExprHook func(bad string) []HookSuggestion
	FileHook func(bad string) []HookSuggestion
}

// HookSuggestion is one (word, score) pair an ExprHook/FileHook
// contributes directly to the candidate store.
type HookSuggestion struct {
	Word  string
	Score int
}

// DefaultOptions mirrors spec.md's stated defaults: BEST mode, a
// 25-word cap and a 5 second deadline.
func DefaultOptions() Options {
	return Options{
		Mode:     Best,
		MaxCount: 25,
		Timeout:  5 * time.Second,
	}
}
