package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Expected somewhere in the output: throughput=196.4/sec meanRT=408.708ms
var (
	throughputPattern = regexp.MustCompile(`throughput=([\d.]+)/sec`)
	meanRTPattern     = regexp.MustCompile(`meanRT=([\d.]+)ms`)
)

// Metrics are the two numeric fields a performance program must report.
type Metrics struct {
	Throughput float64 // requests per second
	MeanRT     float64 // mean response time, milliseconds
}

// ParseError reports output that did not contain a readable metric. It
// carries the raw output so the failure is diagnosable from the console.
type ParseError struct {
	Field  string // which metric could not be read
	Output string // raw program output
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("could not parse %s from output", e.Field)
}

// MetricsParser extracts throughput and mean response time from free-text
// program output.
type MetricsParser struct{}

// NewMetricsParser creates a new MetricsParser.
func NewMetricsParser() *MetricsParser {
	return &MetricsParser{}
}

// Parse locates both metric fields in the output. A missing or non-numeric
// field yields a ParseError, never a zero value.
func (p *MetricsParser) Parse(output string) (Metrics, error) {
	throughput, err := extractField(throughputPattern, "throughput", output)
	if err != nil {
		return Metrics{}, err
	}
	meanRT, err := extractField(meanRTPattern, "meanRT", output)
	if err != nil {
		return Metrics{}, err
	}
	return Metrics{Throughput: throughput, MeanRT: meanRT}, nil
}

func extractField(pattern *regexp.Regexp, field, output string) (float64, error) {
	match := pattern.FindStringSubmatch(output)
	if len(match) < 2 {
		return 0, &ParseError{Field: field, Output: strings.TrimSpace(output)}
	}
	value, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return 0, &ParseError{Field: field, Output: strings.TrimSpace(output)}
	}
	return value, nil
}
