package judge

import (
	"fmt"
	"strconv"

	"grader/internal/config"
	"grader/internal/domain"
)

// Response time physically cannot drop much below the service demand, so the
// unsaturated window uses a tighter lower margin than the tolerance fraction.
const unsaturatedLowerFactor = 0.9

// PerfParams are the queueing inputs a performance case declares through its
// argument list: inter-arrival-time mean (ms), service-demand mean (ms), and
// concurrency limit.
type PerfParams struct {
	IATMean       float64
	DemandMean    float64
	MaxConcurrent int
}

// ParsePerfParams interprets a performance case's positional arguments.
func ParsePerfParams(args []string) (PerfParams, error) {
	if len(args) < 3 {
		return PerfParams{}, fmt.Errorf("need 3 arguments (iatMean, demandMean, maxConcurrent), got %d", len(args))
	}
	iat, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return PerfParams{}, fmt.Errorf("invalid iatMean %q: %w", args[0], err)
	}
	demand, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return PerfParams{}, fmt.Errorf("invalid demandMean %q: %w", args[1], err)
	}
	concurrent, err := strconv.Atoi(args[2])
	if err != nil {
		return PerfParams{}, fmt.Errorf("invalid maxConcurrent %q: %w", args[2], err)
	}
	return PerfParams{IATMean: iat, DemandMean: demand, MaxConcurrent: concurrent}, nil
}

// Window is an inclusive acceptance range for a metric.
type Window struct {
	Lower float64
	Upper float64
}

// Contains reports whether v falls inside the window.
func (w Window) Contains(v float64) bool {
	return w.Lower <= v && v <= w.Upper
}

// Expectation is the model's prediction for a performance case, computed
// before the program runs.
type Expectation struct {
	Lambda        float64 // offered load, requests/sec
	MaxThroughput float64 // maximum sustainable throughput, requests/sec
	DemandMean    float64 // service-demand mean, ms
	Saturated     bool
	Window        Window // acceptance range for the relevant metric
}

// Oracle predicts the expected throughput and mean response time of an
// M/M/c-style scenario and derives the tolerance-bounded acceptance window.
type Oracle struct {
	tolerance float64
}

// NewOracle creates an Oracle with the given tolerance fraction; values <= 0
// fall back to the default.
func NewOracle(tolerance float64) *Oracle {
	if tolerance <= 0 {
		tolerance = config.DefaultTolerance
	}
	return &Oracle{tolerance: tolerance}
}

// Expect computes the model prediction for the given parameters. Saturation
// is a hard threshold: offered load at or above capacity is saturated.
func (o *Oracle) Expect(p PerfParams) Expectation {
	var lambda float64
	if p.IATMean > 0 {
		lambda = 1000.0 / p.IATMean
	}
	var maxThroughput float64
	if p.DemandMean > 0 {
		maxThroughput = float64(p.MaxConcurrent) * 1000.0 / p.DemandMean
	}

	exp := Expectation{
		Lambda:        lambda,
		MaxThroughput: maxThroughput,
		DemandMean:    p.DemandMean,
		Saturated:     lambda >= maxThroughput,
	}
	if exp.Saturated {
		exp.Window = Window{
			Lower: maxThroughput * (1.0 - o.tolerance),
			Upper: maxThroughput * (1.0 + o.tolerance),
		}
	} else {
		exp.Window = Window{
			Lower: p.DemandMean * unsaturatedLowerFactor,
			Upper: p.DemandMean * (1.0 + o.tolerance),
		}
	}
	return exp
}

// Judge checks the reported metrics against the expectation: throughput for a
// saturated scenario, mean response time for an unsaturated one.
func (o *Oracle) Judge(exp Expectation, throughput, meanRT float64) domain.Verdict {
	if exp.Saturated {
		if exp.Window.Contains(throughput) {
			return domain.Verdict{
				Status:  domain.StatusPass,
				Message: fmt.Sprintf("Throughput %.1f is within range of max %.1f", throughput, exp.MaxThroughput),
			}
		}
		return domain.Verdict{
			Status:  domain.StatusFail,
			Message: fmt.Sprintf("Throughput %.1f OUT OF RANGE (Expected ~%.1f)", throughput, exp.MaxThroughput),
		}
	}

	if exp.Window.Contains(meanRT) {
		return domain.Verdict{
			Status:  domain.StatusPass,
			Message: fmt.Sprintf("MeanRT %.1fms is within range of demand %.1fms", meanRT, exp.DemandMean),
		}
	}
	// An unsaturated case with a high RT is likely near the saturation boundary.
	return domain.Verdict{
		Status:  domain.StatusFail,
		Message: fmt.Sprintf("MeanRT %.1fms OUT OF RANGE (Expected ~%.1fms)", meanRT, exp.DemandMean),
	}
}
