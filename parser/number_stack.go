package parser

import "math/big"

// parseLaughStack decodes stack laugh notation. Tokens run a postfix
// program over an integer stack: the ones rune pushes 1, the five-bump
// phrase adds 5 to the top, and the higher place runes multiply the top
// by 10, 100 or 1000. The value is the sum of the final stack. The
// zero-group rune has no stack reading.
func parseLaughStack(s string) (*big.Int, bool) {
	rest, neg, ok := stripLaughSign(s)
	if !ok {
		return nil, false
	}

	rs := []rune(rest)
	var stack []*big.Int
	for i := 0; i < len(rs); {
		// The five-bump phrase opens with the push-one rune, so it is
		// matched first.
		if hasRunePrefix(rs[i:], laughFiveRunes) {
			if len(stack) == 0 {
				return nil, false
			}
			top := stack[len(stack)-1]
			top.Add(top, big.NewInt(5))
			i += len(laughFiveRunes)
			continue
		}

		switch rs[i] {
		case LAUGH_ONES:
			stack = append(stack, big.NewInt(1))
		case LAUGH_TENS, LAUGH_HUNDREDS, LAUGH_THOUSANDS:
			if len(stack) == 0 {
				return nil, false
			}
			top := stack[len(stack)-1]
			top.Mul(top, stackMultiplier(rs[i]))
		default:
			return nil, false
		}
		i++
	}

	if len(stack) == 0 {
		return nil, false
	}
	sum := new(big.Int)
	for _, v := range stack {
		sum.Add(sum, v)
	}
	if neg {
		sum.Neg(sum)
	}
	return sum, true
}

func stackMultiplier(r rune) *big.Int {
	switch r {
	case LAUGH_TENS:
		return big.NewInt(10)
	case LAUGH_HUNDREDS:
		return big.NewInt(100)
	default:
		return big.NewInt(1000)
	}
}
