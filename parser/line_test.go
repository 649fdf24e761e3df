package parser

import "testing"

func TestCleanLine(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"멘똔", "멘똔"},
		{"  멘똔  ", "멘똔"},
		{"하요하요 5 # five", "하요하요 5"},
		{"# whole line comment", ""},
		{"", ""},
		{"   ", ""},
		{"a#b#c", "a"},
		{"\t좋다좋다 0 응나멘똔\t", "좋다좋다 0 응나멘똔"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := CleanLine(tt.input)
			if got != tt.want {
				t.Errorf("CleanLine(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestPreprocess(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"하요하요 5으이?와타시는", "하요하요 5\n와타시는"},
		{"으이?으이?", "\n\n"},
		{"no token", "no token"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := Preprocess(tt.input)
			if got != tt.want {
				t.Errorf("Preprocess(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSplitLines(t *testing.T) {
	lines := SplitLines("멘똔\n하요하요 5\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %v", len(lines), lines)
	}
	if lines[0] != "멘똔" || lines[1] != "하요하요 5" || lines[2] != "" {
		t.Errorf("unexpected lines: %v", lines)
	}
}

// A newline token glued between statements must yield separate lines.
func TestPreprocessThenSplit(t *testing.T) {
	lines := SplitLines(Preprocess("하요하요 3으이?누이 좋고으이?바요바요"))
	want := []string{"하요하요 3", "누이 좋고", "바요바요"}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d: %v", len(want), len(lines), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line[%d] = %q, want %q", i, lines[i], want[i])
		}
	}
}
