package parser

import (
	"errors"
	"math/big"
	"strings"
	"testing"

	"mentonlang/types"
)

func TestParseCondition(t *testing.T) {
	tests := []struct {
		line   string
		wantN  int64
		wantOp CmpOp
	}{
		{"건방진 5", 5, CmpEq},
		{"좋다좋다 0 응나멘똔", 0, CmpGt},
		{"건방진 10 응너도혁", 10, CmpLt},
		{"건방진 뭐꼬훠", -1, CmpEq},
		{"좋다좋다 훳훠 응나멘똔", 11, CmpGt},
		{"건방진 5 응나멘똔 trailing junk", 5, CmpGt},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			cond, err := ParseCondition(tt.line, GrammarPositional)
			if err != nil {
				t.Fatalf("ParseCondition(%q) error: %v", tt.line, err)
			}
			if cond.N.Cmp(big.NewInt(tt.wantN)) != 0 {
				t.Errorf("N = %s, want %d", cond.N, tt.wantN)
			}
			if cond.Op != tt.wantOp {
				t.Errorf("Op = %s, want %s", cond.Op, tt.wantOp)
			}
		})
	}
}

func TestParseConditionErrors(t *testing.T) {
	tests := []struct {
		line     string
		contains string
	}{
		{"건방진", "Missing number"},
		{"좋다좋다", "Missing number"},
		{"건방진 xyz", "Invalid number"},
		{"건방진 5 zzz", "Unknown comparator"},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			_, err := ParseCondition(tt.line, GrammarPositional)
			if err == nil {
				t.Fatalf("ParseCondition(%q) succeeded, want error", tt.line)
			}
			var se *types.SyntaxError
			if !errors.As(err, &se) {
				t.Fatalf("error type = %T, want *types.SyntaxError", err)
			}
			if !strings.Contains(err.Error(), tt.contains) {
				t.Errorf("error %q does not contain %q", err, tt.contains)
			}
		})
	}
}

func TestConditionHolds(t *testing.T) {
	tests := []struct {
		cur  int64
		n    int64
		op   CmpOp
		want bool
	}{
		{5, 5, CmpEq, true},
		{4, 5, CmpEq, false},
		{6, 5, CmpGt, true},
		{5, 5, CmpGt, false},
		{4, 5, CmpLt, true},
		{5, 5, CmpLt, false},
		{-3, 0, CmpLt, true},
		{0, 0, CmpEq, true},
	}

	for _, tt := range tests {
		cond := Condition{N: big.NewInt(tt.n), Op: tt.op}
		if got := cond.Holds(big.NewInt(tt.cur)); got != tt.want {
			t.Errorf("Holds(%d %s %d) = %v, want %v", tt.cur, tt.op, tt.n, got, tt.want)
		}
	}
}

// The numeral field follows the program's grammar setting.
func TestParseConditionGrammar(t *testing.T) {
	cond, err := ParseCondition("건방진 훠훳", GrammarStack)
	if err != nil {
		t.Fatalf("ParseCondition error: %v", err)
	}
	if cond.N.Int64() != 10 {
		t.Errorf("stack numeral = %s, want 10", cond.N)
	}
}
