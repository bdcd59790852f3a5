package domain

import "testing"

// tally folds cases through Score.Add the way the functional run loop does:
// every case contributes to Max, passing cases also contribute to Earned.
func tally(points []int, passed []bool) Score {
	score := Score{}
	for i, p := range points {
		earned := 0
		if passed[i] {
			earned = p
		}
		score = score.Add(Score{Earned: earned, Max: p})
	}
	return score
}

func TestScore_Accumulation(t *testing.T) {
	tests := []struct {
		name   string
		points []int
		passed []bool
		want   Score
	}{
		{
			name:   "first and third of three pass",
			points: []int{5, 3, 2},
			passed: []bool{true, false, true},
			want:   Score{Earned: 7, Max: 10},
		},
		{
			name:   "all pass",
			points: []int{5, 3, 2},
			passed: []bool{true, true, true},
			want:   Score{Earned: 10, Max: 10},
		},
		{
			name:   "none pass",
			points: []int{5, 3, 2},
			passed: []bool{false, false, false},
			want:   Score{Earned: 0, Max: 10},
		},
		{
			name:   "zero-point case passes",
			points: []int{0, 4},
			passed: []bool{true, false},
			want:   Score{Earned: 0, Max: 4},
		},
		{
			name:   "no cases",
			points: nil,
			passed: nil,
			want:   Score{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tally(tt.points, tt.passed); got != tt.want {
				t.Errorf("expected %d/%d, got %d/%d", tt.want.Earned, tt.want.Max, got.Earned, got.Max)
			}
		})
	}
}

func TestScore_AccumulationOrderIndependent(t *testing.T) {
	// The same verdicts folded in any case order yield the same tally.
	orders := [][]int{
		{0, 1, 2},
		{2, 1, 0},
		{1, 2, 0},
	}
	points := []int{5, 3, 2}
	passed := []bool{true, false, true}

	want := Score{Earned: 7, Max: 10}
	for _, order := range orders {
		score := Score{}
		for _, i := range order {
			earned := 0
			if passed[i] {
				earned = points[i]
			}
			score = score.Add(Score{Earned: earned, Max: points[i]})
		}
		if score != want {
			t.Errorf("order %v: expected %d/%d, got %d/%d", order, want.Earned, want.Max, score.Earned, score.Max)
		}
	}
}

func TestScore_Perfect(t *testing.T) {
	tests := []struct {
		name    string
		score   Score
		perfect bool
	}{
		{"all points earned", Score{Earned: 10, Max: 10}, true},
		{"points missing", Score{Earned: 7, Max: 10}, false},
		{"empty run", Score{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.score.Perfect(); got != tt.perfect {
				t.Errorf("expected Perfect()=%v for %d/%d", tt.perfect, tt.score.Earned, tt.score.Max)
			}
		})
	}
}
