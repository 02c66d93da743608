package candidate

import "testing"

func TestInsertAppendsNewCandidate(t *testing.T) {
	s := New(25)
	s.Insert("thier", "there", 100, 100, false, false, nil)
	if len(s.Primary) != 1 {
		t.Fatalf("expected 1 primary candidate, got %d", len(s.Primary))
	}
	if s.Primary[0].Word != "there" {
		t.Fatalf("expected word %q, got %q", "there", s.Primary[0].Word)
	}
}

func TestInsertMinimizesNoOp(t *testing.T) {
	s := New(25)
	s.Insert("the the", "the the", 0, 0, false, false, nil)
	if len(s.Primary) != 0 {
		t.Fatalf("expected no-op insertion to be dropped, got %+v", s.Primary)
	}
}

func TestInsertKeepsLowerScoreOnDuplicate(t *testing.T) {
	s := New(25)
	s.Insert("thier", "there", 100, 100, false, false, nil)
	s.Insert("thier", "there", 50, 40, false, false, nil)
	if len(s.Primary) != 1 {
		t.Fatalf("expected dedup to merge into 1 entry, got %d", len(s.Primary))
	}
	if s.Primary[0].Score != 50 {
		t.Fatalf("expected the lower score 50 to win, got %d", s.Primary[0].Score)
	}
}

func TestInsertAppliesBonusOnMismatchedHadBonus(t *testing.T) {
	s := New(25)
	bonus := func() int { return 20 }
	s.Insert("thier", "there", 100, 100, false, false, bonus)
	s.Insert("thier", "there", 100, 100, true, false, bonus)
	if !s.Primary[0].HadBonus {
		t.Fatal("expected the merged entry to carry the bonus flag")
	}
	if s.Primary[0].Score != 80 {
		t.Fatalf("expected bonus to reduce the existing entry's score to 80, got %d", s.Primary[0].Score)
	}
}

func TestCleanupTruncatesAndSetsMaxScore(t *testing.T) {
	s := New(10)
	s.cleanCount = 5
	// The 56th insert passes cleanCount+50 and triggers cleanup: scores
	// run from 100 down to 45, so the five kept are 45..49.
	for i := 0; i < s.cleanCount+51; i++ {
		word := string(rune('a'+i)) + "word"
		s.Insert("badword", word, 100-i, 100-i, false, false, nil)
	}
	if len(s.Primary) != s.cleanCount {
		t.Fatalf("expected cleanup to truncate to %d entries, got %d", s.cleanCount, len(s.Primary))
	}
	if got := s.MaxScore(false); got != 49 {
		t.Fatalf("expected prune threshold 49 from the kept tail, got %d", got)
	}
}

func TestFinalizeDedupsAcrossListsAndCaps(t *testing.T) {
	s := New(2)
	s.Insert("alphx", "alpha", 10, 10, false, false, nil)
	s.InsertSecondary("alphx", "alpha", 5, 5, false, true, nil)
	s.Insert("betx", "beta", 20, 20, false, false, nil)
	s.Insert("gammx", "gamma", 30, 30, false, false, nil)

	out := s.Finalize()
	if len(out) > 2 {
		t.Fatalf("expected Finalize to cap at maxCount=2, got %d", len(out))
	}
	for _, sug := range out {
		if sug.Word == "alpha" && sug.Score != 5 {
			t.Fatalf("expected deduped alpha to keep the lower score 5, got %d", sug.Score)
		}
	}
}
