package parser

import (
	"math/big"
	"strings"
)

// EncodeNumber renders n as a numeral that the given grammar decodes back
// to n. Values the laugh notation cannot spell come back as plain decimal,
// which every decoder accepts ahead of the laugh grammar.
func EncodeNumber(n *big.Int, g Grammar) string {
	if g == GrammarStack {
		return encodeLaughStack(n)
	}
	return encodeLaughPositional(n)
}

// encodeLaughPositional emits canonical positional notation and verifies
// it round-trips. The decoder anchors a spelling at the smallest workable
// power, so some magnitudes (a bare digit four powers up, deep zero runs)
// have no spelling at all and fall back to decimal.
func encodeLaughPositional(n *big.Int) string {
	dec := n.String()
	if n.Sign() == 0 {
		return dec
	}

	digits := dec
	var sb strings.Builder
	if n.Sign() < 0 {
		digits = dec[1:]
		sb.WriteString(LAUGH_NEG)
	}
	body, ok := emitPositionalMagnitude(digits)
	if !ok {
		return dec
	}
	sb.WriteString(body)

	out := sb.String()
	back, ok := parseLaughPositional(out)
	if !ok || back.Cmp(n) != 0 {
		return dec
	}
	return out
}

// emitPositionalMagnitude spells a nonzero decimal digit string the way
// the decoder walks it: digits highest place first, short zero runs left
// implicit, each fully aligned window of four zeros written as a zero
// group, and trailing whole groups closed explicitly so the power search
// cannot anchor the spelling lower. Magnitudes whose zero runs overflow
// the group counter report ok == false.
func emitPositionalMagnitude(digits string) (string, bool) {
	var sb strings.Builder
	L := len(digits)
	last := strings.LastIndexFunc(digits, func(r rune) bool { return r != '0' })
	if last < 0 {
		return "", false
	}

	used := 0
	for j := 0; j <= last; {
		k := L - 1 - j
		d := int(digits[j] - '0')

		if d == 0 {
			if j+4 <= L && digits[j:j+4] == "0000" {
				sb.WriteRune(LAUGH_ZERO_GROUP)
				j += 4
				used = 0
				continue
			}
			j++
			used++
			if used >= 4 {
				return "", false
			}
			continue
		}

		writeLaughDigit(&sb, d, placeForPower(k))
		j++
		used++
		if used >= 4 {
			used = 0
		}
	}

	for k := L - 2 - last; k >= 4; k -= 4 {
		sb.WriteRune(LAUGH_ZERO_GROUP)
	}
	return sb.String(), true
}

// writeLaughDigit appends the run for one digit 1..9 at the given place.
func writeLaughDigit(sb *strings.Builder, d int, place rune) {
	reps := d
	if d > 5 {
		sb.WriteString(LAUGH_FIVE)
		reps = d - 5
	}
	for i := 0; i < reps; i++ {
		sb.WriteRune(place)
	}
}

// encodeLaughStack emits one stack entry per nonzero decimal digit: a
// push of one, a five-bump when the digit is six or more, and a
// multiplier chain raising the entry to its decimal power. Zero leaves
// the stack empty and so has no spelling.
func encodeLaughStack(n *big.Int) string {
	dec := n.String()
	if n.Sign() == 0 {
		return dec
	}

	digits := dec
	var sb strings.Builder
	if n.Sign() < 0 {
		digits = dec[1:]
		sb.WriteString(LAUGH_NEG)
	}

	L := len(digits)
	for j := 0; j < L; j++ {
		d := int(digits[j] - '0')
		if d == 0 {
			continue
		}
		k := L - 1 - j
		if d >= 6 {
			sb.WriteRune(LAUGH_ONES)
			sb.WriteString(LAUGH_FIVE)
			writeStackPower(&sb, k)
			d -= 6
		}
		for ; d > 0; d-- {
			sb.WriteRune(LAUGH_ONES)
			writeStackPower(&sb, k)
		}
	}

	out := sb.String()
	back, ok := parseLaughStack(out)
	if !ok || back.Cmp(n) != 0 {
		return dec
	}
	return out
}

// writeStackPower appends the multiplier chain for 10^k.
func writeStackPower(sb *strings.Builder, k int) {
	for ; k >= 3; k -= 3 {
		sb.WriteRune(LAUGH_THOUSANDS)
	}
	switch k {
	case 1:
		sb.WriteRune(LAUGH_TENS)
	case 2:
		sb.WriteRune(LAUGH_HUNDREDS)
	}
}
