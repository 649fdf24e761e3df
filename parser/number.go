package parser

import (
	"math/big"
	"strings"
)

// Grammar selects the laugh-number notation in force for a program. The
// token vocabulary admits two incompatible readings and a numeral is
// generally valid under only one of them, so the choice is explicit
// configuration rather than a guess per numeral.
type Grammar int

const (
	// GrammarPositional reads laugh numerals as positional notation with
	// an inferred starting power. This is the default.
	GrammarPositional Grammar = iota
	// GrammarStack reads laugh numerals as a postfix stack program.
	GrammarStack
)

func (g Grammar) String() string {
	switch g {
	case GrammarPositional:
		return "positional"
	case GrammarStack:
		return "stack"
	default:
		return "unknown"
	}
}

// ParseGrammar maps a configuration value to a Grammar. The empty string
// selects the default.
func ParseGrammar(s string) (Grammar, bool) {
	switch s {
	case "", "positional":
		return GrammarPositional, true
	case "stack":
		return GrammarStack, true
	default:
		return 0, false
	}
}

// ParseNumber decodes one numeral token. Plain decimal always takes
// precedence; the laugh grammar is consulted only when decimal parsing
// fails. The second result is false when the token is neither.
func ParseNumber(s string, g Grammar) (*big.Int, bool) {
	if v, ok := parseDecimal(s); ok {
		return v, true
	}
	if g == GrammarStack {
		return parseLaughStack(s)
	}
	return parseLaughPositional(s)
}

// parseDecimal parses an optionally signed ASCII decimal string at
// arbitrary precision.
func parseDecimal(s string) (*big.Int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, false
	}
	return new(big.Int).SetString(s, 10)
}

// stripLaughSign removes the optional negative prefix from a laugh
// numeral and reports whether anything remains to decode.
func stripLaughSign(s string) (rest string, neg, ok bool) {
	rest = strings.TrimSpace(s)
	if rest == "" {
		return "", false, false
	}
	if strings.HasPrefix(rest, LAUGH_NEG) {
		neg = true
		rest = strings.TrimSpace(strings.TrimPrefix(rest, LAUGH_NEG))
		if rest == "" {
			return "", false, false
		}
	}
	return rest, neg, true
}

// placeMod returns the decimal-power residue mod 4 a place rune encodes,
// or -1 for anything that is not a place rune.
func placeMod(r rune) int {
	switch r {
	case LAUGH_ONES:
		return 0
	case LAUGH_TENS:
		return 1
	case LAUGH_HUNDREDS:
		return 2
	case LAUGH_THOUSANDS:
		return 3
	default:
		return -1
	}
}

// placeForPower returns the place rune that marks decimal power k.
func placeForPower(k int) rune {
	switch k % 4 {
	case 0:
		return LAUGH_ONES
	case 1:
		return LAUGH_TENS
	case 2:
		return LAUGH_HUNDREDS
	default:
		return LAUGH_THOUSANDS
	}
}

func hasRunePrefix(rs, prefix []rune) bool {
	if len(rs) < len(prefix) {
		return false
	}
	for i := range prefix {
		if rs[i] != prefix[i] {
			return false
		}
	}
	return true
}

// pow10 returns 10^k as a fresh big.Int.
func pow10(k int) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(k)), nil)
}
