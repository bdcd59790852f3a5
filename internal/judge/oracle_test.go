package judge

import (
	"math"
	"testing"

	"grader/internal/domain"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestOracle_Expect(t *testing.T) {
	oracle := NewOracle(0.20)

	tests := []struct {
		name          string
		params        PerfParams
		lambda        float64
		maxThroughput float64
		saturated     bool
		windowLower   float64
		windowUpper   float64
	}{
		{
			name:          "unsaturated light load",
			params:        PerfParams{IATMean: 100, DemandMean: 500, MaxConcurrent: 10},
			lambda:        10,
			maxThroughput: 100,
			saturated:     false,
			windowLower:   450, // 0.9 * 500
			windowUpper:   600, // 1.2 * 500
		},
		{
			name:          "saturated heavy load",
			params:        PerfParams{IATMean: 10, DemandMean: 500, MaxConcurrent: 2},
			lambda:        100,
			maxThroughput: 4,
			saturated:     true,
			windowLower:   3.2, // 0.8 * 4
			windowUpper:   4.8, // 1.2 * 4
		},
		{
			name:          "boundary load classifies as saturated",
			params:        PerfParams{IATMean: 100, DemandMean: 100, MaxConcurrent: 1},
			lambda:        10,
			maxThroughput: 10,
			saturated:     true,
			windowLower:   8,
			windowUpper:   12,
		},
		{
			name:          "non-positive inter-arrival time means zero load",
			params:        PerfParams{IATMean: 0, DemandMean: 100, MaxConcurrent: 1},
			lambda:        0,
			maxThroughput: 10,
			saturated:     false,
			windowLower:   90,
			windowUpper:   120,
		},
		{
			name:          "non-positive demand means zero capacity",
			params:        PerfParams{IATMean: 100, DemandMean: 0, MaxConcurrent: 4},
			lambda:        10,
			maxThroughput: 0,
			saturated:     true,
			windowLower:   0,
			windowUpper:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exp := oracle.Expect(tt.params)
			if !almostEqual(exp.Lambda, tt.lambda) {
				t.Errorf("lambda: expected %v, got %v", tt.lambda, exp.Lambda)
			}
			if !almostEqual(exp.MaxThroughput, tt.maxThroughput) {
				t.Errorf("max throughput: expected %v, got %v", tt.maxThroughput, exp.MaxThroughput)
			}
			if exp.Saturated != tt.saturated {
				t.Errorf("saturated: expected %v, got %v", tt.saturated, exp.Saturated)
			}
			if !almostEqual(exp.Window.Lower, tt.windowLower) {
				t.Errorf("window lower: expected %v, got %v", tt.windowLower, exp.Window.Lower)
			}
			if !almostEqual(exp.Window.Upper, tt.windowUpper) {
				t.Errorf("window upper: expected %v, got %v", tt.windowUpper, exp.Window.Upper)
			}
		})
	}
}

func TestOracle_Judge(t *testing.T) {
	oracle := NewOracle(0.20)

	t.Run("saturated judges throughput", func(t *testing.T) {
		exp := oracle.Expect(PerfParams{IATMean: 10, DemandMean: 500, MaxConcurrent: 2})

		tests := []struct {
			name       string
			throughput float64
			meanRT     float64
			status     domain.Status
		}{
			{"within window", 4.0, 9999, domain.StatusPass},
			{"at lower bound", 3.2, 9999, domain.StatusPass},
			{"at upper bound", 4.8, 9999, domain.StatusPass},
			{"below window", 3.1, 9999, domain.StatusFail},
			{"above window", 4.9, 9999, domain.StatusFail},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				// MeanRT is irrelevant in the saturated branch.
				v := oracle.Judge(exp, tt.throughput, tt.meanRT)
				if v.Status != tt.status {
					t.Errorf("expected %v, got %v (%s)", tt.status, v.Status, v.Message)
				}
			})
		}
	})

	t.Run("unsaturated judges mean response time", func(t *testing.T) {
		exp := oracle.Expect(PerfParams{IATMean: 100, DemandMean: 500, MaxConcurrent: 10})

		tests := []struct {
			name       string
			throughput float64
			meanRT     float64
			status     domain.Status
		}{
			{"within window", 9999, 505.2, domain.StatusPass},
			{"at lower bound", 9999, 450, domain.StatusPass},
			{"at upper bound", 9999, 600, domain.StatusPass},
			{"implausibly low", 9999, 449, domain.StatusFail},
			{"too high", 9999, 601, domain.StatusFail},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				v := oracle.Judge(exp, tt.throughput, tt.meanRT)
				if v.Status != tt.status {
					t.Errorf("expected %v, got %v (%s)", tt.status, v.Status, v.Message)
				}
			})
		}
	})
}

func TestNewOracle_DefaultTolerance(t *testing.T) {
	oracle := NewOracle(0)
	exp := oracle.Expect(PerfParams{IATMean: 10, DemandMean: 500, MaxConcurrent: 2})
	if !almostEqual(exp.Window.Lower, 3.2) || !almostEqual(exp.Window.Upper, 4.8) {
		t.Errorf("expected default 0.20 tolerance window [3.2, 4.8], got [%v, %v]",
			exp.Window.Lower, exp.Window.Upper)
	}
}

func TestParsePerfParams(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    PerfParams
		wantErr bool
	}{
		{
			name: "valid arguments",
			args: []string{"100", "500.5", "10"},
			want: PerfParams{IATMean: 100, DemandMean: 500.5, MaxConcurrent: 10},
		},
		{
			name:    "too few arguments",
			args:    []string{"100", "500"},
			wantErr: true,
		},
		{
			name:    "non-numeric inter-arrival time",
			args:    []string{"fast", "500", "10"},
			wantErr: true,
		},
		{
			name:    "non-integer concurrency",
			args:    []string{"100", "500", "2.5"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePerfParams(tt.args)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %+v, got %+v", tt.want, got)
			}
		})
	}
}
