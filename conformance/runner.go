package conformance

import (
	"errors"
	"fmt"
	"strings"

	"mentonlang/parser"
	"mentonlang/types"
	"mentonlang/vm"
)

// DefaultStepLimit guards fixture programs against runaway loops
const DefaultStepLimit = 1000000

// TestResult represents the outcome of running a single test
type TestResult struct {
	Test       LoadedTest
	Passed     bool
	Skipped    bool
	SkipReason string
	Error      error
}

// Runner executes conformance tests against the interpreter
type Runner struct{}

// NewRunner creates a new test runner
func NewRunner() *Runner {
	return &Runner{}
}

// Run executes a single test case
func (r *Runner) Run(test LoadedTest) TestResult {
	if skipped, reason := test.Test.IsSkipped(); skipped {
		return TestResult{
			Test:       test,
			Skipped:    true,
			SkipReason: reason,
		}
	}

	grammar, ok := parser.ParseGrammar(test.Test.Numerals)
	if !ok {
		return TestResult{
			Test:  test,
			Error: fmt.Errorf("bad numerals value %q", test.Test.Numerals),
		}
	}

	lines := parser.SplitLines(parser.Preprocess(test.Test.Program))

	var out string
	in, err := vm.New(lines)
	if err == nil {
		in.Grammar = grammar
		in.StepLimit = DefaultStepLimit
		if test.Test.Steps > 0 {
			in.StepLimit = test.Test.Steps
		}
		out, err = in.Run()
	}

	passed, checkErr := checkExpectation(test.Test.Expect, out, err)
	return TestResult{
		Test:   test,
		Passed: passed,
		Error:  checkErr,
	}
}

// RunAll executes all loaded tests
func (r *Runner) RunAll(tests []LoadedTest) []TestResult {
	results := make([]TestResult, len(tests))
	for i, test := range tests {
		results[i] = r.Run(test)
	}
	return results
}

// checkExpectation checks if the run outcome matches the expectation
func checkExpectation(expect Expectation, out string, err error) (bool, error) {
	if expect.Error != "" {
		if err == nil {
			return false, fmt.Errorf("expected %s error, run produced %q", expect.Error, out)
		}
		kind := errorKind(err)
		if kind != expect.Error {
			return false, fmt.Errorf("expected %s error, got %s: %v", expect.Error, kind, err)
		}
		if expect.Line > 0 {
			if line := errorLine(err); line != expect.Line {
				return false, fmt.Errorf("expected error at line %d, got line %d: %v", expect.Line, line, err)
			}
		}
		if expect.Contains != "" && !strings.Contains(err.Error(), expect.Contains) {
			return false, fmt.Errorf("error %q does not contain %q", err, expect.Contains)
		}
		return true, nil
	}

	if err != nil {
		return false, fmt.Errorf("unexpected error: %w", err)
	}
	if out != expect.Output {
		return false, fmt.Errorf("output %q, want %q", out, expect.Output)
	}
	return true, nil
}

// errorKind maps an interpreter error to its fixture name
func errorKind(err error) string {
	var se *types.SyntaxError
	if errors.As(err, &se) {
		return "syntax"
	}
	var ie *types.InternalError
	if errors.As(err, &ie) {
		return "internal"
	}
	var le *types.LimitError
	if errors.As(err, &le) {
		return "limit"
	}
	return "unknown"
}

// errorLine extracts the 1-based line an interpreter error reports
func errorLine(err error) int {
	var se *types.SyntaxError
	if errors.As(err, &se) {
		return se.Line
	}
	var ie *types.InternalError
	if errors.As(err, &ie) {
		return ie.Line
	}
	var le *types.LimitError
	if errors.As(err, &le) {
		return le.Line
	}
	return 0
}

// SummaryStats computes statistics from test results
type SummaryStats struct {
	Total   int
	Passed  int
	Failed  int
	Skipped int
}

// ComputeStats generates statistics from test results
func ComputeStats(results []TestResult) SummaryStats {
	stats := SummaryStats{Total: len(results)}
	for _, r := range results {
		if r.Skipped {
			stats.Skipped++
		} else if r.Passed {
			stats.Passed++
		} else {
			stats.Failed++
		}
	}
	return stats
}

// FormatStats returns a human-readable summary
func FormatStats(stats SummaryStats) string {
	return fmt.Sprintf("%d passed, %d failed, %d skipped (%d total)",
		stats.Passed, stats.Failed, stats.Skipped, stats.Total)
}
