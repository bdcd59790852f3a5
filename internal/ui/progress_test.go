package ui

import "testing"

func TestProgressBar_UpdateAdvancesOnAnyOutcome(t *testing.T) {
	bar := NewProgressBar(4)

	// 1 passed, 1 failed, 1 skipped: the bar position tracks completed cases,
	// not just the pass/fail labels.
	bar.Update(3, 1, 1)
	if got := bar.bar.State().CurrentNum; got != 3 {
		t.Errorf("expected bar position 3, got %d", got)
	}

	bar.Update(4, 2, 1)
	if got := bar.bar.State().CurrentNum; got != 4 {
		t.Errorf("expected bar position 4, got %d", got)
	}
	bar.Finish()
}
