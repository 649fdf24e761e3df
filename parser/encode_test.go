package parser

import (
	"math/big"
	"testing"
)

func TestEncodePositionalCanonical(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "0"},
		{1, "훠"},
		{3, "훠훠훠"},
		{5, "훠훠훠훠훠"},
		{6, "훠러훠"},
		{9, "훠러훠훠훠훠"},
		{10, "훳"},
		{11, "훳훠"},
		{32, "훳훳훳훠훠"},
		{100, "허"},
		{110, "허훳"},
		{1000, "헛"},
		{1001, "헛훠"},
		{1111, "헛허훳훠"},
		{2001, "헛헛훠"},
		{11111, "훠헛허훳훠"},
		{100000, "훳찢"},
		{100000000, "훠찢"},
		{100000001, "훠찢훠"},
		{500000000, "훠훠훠훠훠찢"},
		{-7, "뭐꼬훠러훠훠"},
		{-2001, "뭐꼬헛헛훠"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got := EncodeNumber(big.NewInt(tt.n), GrammarPositional)
			if got != tt.want {
				t.Errorf("EncodeNumber(%d) = %q, want %q", tt.n, got, tt.want)
			}
		})
	}
}

// Magnitudes the positional notation cannot spell come back as decimal.
func TestEncodePositionalDecimalFallback(t *testing.T) {
	tests := []int64{10000, 20000, 10001, 10600, 50000, 123456789}

	for _, n := range tests {
		got := EncodeNumber(big.NewInt(n), GrammarPositional)
		want := big.NewInt(n).String()
		if got != want {
			t.Errorf("EncodeNumber(%d) = %q, want decimal %q", n, got, want)
		}
	}
}

func TestEncodeStackCanonical(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "0"},
		{1, "훠"},
		{2, "훠훠"},
		{6, "훠훠러"},
		{7, "훠훠러훠"},
		{10, "훠훳"},
		{60, "훠훠러훳"},
		{100, "훠허"},
		{1000, "훠헛"},
		{10000, "훠헛훳"},
		{110, "훠허훠훳"},
		{-10, "뭐꼬훠훳"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got := EncodeNumber(big.NewInt(tt.n), GrammarStack)
			if got != tt.want {
				t.Errorf("EncodeNumber(%d) = %q, want %q", tt.n, got, tt.want)
			}
		})
	}
}

// Every integer must decode back to itself, falling back to decimal where
// the laugh notation has no spelling.
func TestEncodeRoundTripPositional(t *testing.T) {
	for n := int64(0); n <= 20000; n++ {
		v := big.NewInt(n)
		enc := EncodeNumber(v, GrammarPositional)
		back, ok := ParseNumber(enc, GrammarPositional)
		if !ok {
			t.Fatalf("decode(encode(%d)) failed, encoded %q", n, enc)
		}
		if back.Cmp(v) != 0 {
			t.Fatalf("decode(encode(%d)) = %s, encoded %q", n, back, enc)
		}
	}
}

func TestEncodeRoundTripPositionalSpot(t *testing.T) {
	values := []string{
		"-1", "-9999", "99999", "100000", "123450", "500000000",
		"1000000000000", "123456789012345678901234567890",
	}

	for _, s := range values {
		v, ok := new(big.Int).SetString(s, 10)
		if !ok {
			t.Fatalf("bad test value %q", s)
		}
		enc := EncodeNumber(v, GrammarPositional)
		back, ok := ParseNumber(enc, GrammarPositional)
		if !ok || back.Cmp(v) != 0 {
			t.Errorf("decode(encode(%s)) = %v, %v, encoded %q", s, back, ok, enc)
		}
	}
}

func TestEncodeRoundTripStack(t *testing.T) {
	for n := int64(-100); n <= 2000; n++ {
		v := big.NewInt(n)
		enc := EncodeNumber(v, GrammarStack)
		back, ok := ParseNumber(enc, GrammarStack)
		if !ok {
			t.Fatalf("decode(encode(%d)) failed, encoded %q", n, enc)
		}
		if back.Cmp(v) != 0 {
			t.Fatalf("decode(encode(%d)) = %s, encoded %q", n, back, enc)
		}
	}
}
