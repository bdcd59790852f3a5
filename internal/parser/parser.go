package parser

// Parser extracts performance metrics from program output. The free-text
// key=value line is the wire contract between harness and program under test;
// keeping extraction behind this interface lets the format evolve without
// touching judgment logic.
type Parser interface {
	Parse(output string) (Metrics, error)
}
