package conformance

// TestSuite represents a complete YAML fixture file
type TestSuite struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description,omitempty"`
	Tests       []TestCase `yaml:"tests"`
}

// TestCase represents a single program run within a suite
type TestCase struct {
	Name        string      `yaml:"name"`
	Description string      `yaml:"description,omitempty"`
	Skip        interface{} `yaml:"skip,omitempty"` // bool or string
	Program     string      `yaml:"program"`
	Numerals    string      `yaml:"numerals,omitempty"` // positional (default) or stack
	Steps       int64       `yaml:"steps,omitempty"`    // overrides the default step limit
	Expect      Expectation `yaml:"expect"`
}

// Expectation defines what outcome is expected from a run
type Expectation struct {
	Output   string `yaml:"output"`             // exact output, empty when an error is expected
	Error    string `yaml:"error,omitempty"`    // syntax, internal or limit
	Line     int    `yaml:"line,omitempty"`     // 1-based line the error reports
	Contains string `yaml:"contains,omitempty"` // substring of the error message
}

// IsSkipped returns true if this test should be skipped
func (tc *TestCase) IsSkipped() (bool, string) {
	if tc.Skip == nil {
		return false, ""
	}

	switch v := tc.Skip.(type) {
	case bool:
		if v {
			return true, "skipped"
		}
		return false, ""
	case string:
		return true, v
	default:
		return false, ""
	}
}
