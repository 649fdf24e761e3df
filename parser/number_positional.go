package parser

import "math/big"

// laughItem is one element of a positional laugh numeral: a place rune
// carrying a digit 1..9, or a zero-group marker with place == 0.
type laughItem struct {
	place rune
	digit int
}

// scanLaughItems tokenizes magnitude text into positional items. Adjacent
// identical place runes merge into a single digit run: a bare run of 1..5
// encodes that digit, a run of 1..4 behind the five-bump phrase encodes
// 6..9. The zero-group rune stands alone.
func scanLaughItems(rs []rune) ([]laughItem, bool) {
	var items []laughItem
	for i := 0; i < len(rs); {
		if rs[i] == LAUGH_ZERO_GROUP {
			items = append(items, laughItem{})
			i++
			continue
		}

		hasFive := hasRunePrefix(rs[i:], laughFiveRunes)
		if hasFive {
			i += len(laughFiveRunes)
			if i >= len(rs) {
				return nil, false
			}
		}

		place := rs[i]
		if placeMod(place) < 0 {
			return nil, false
		}
		cnt := 0
		for i < len(rs) && rs[i] == place {
			cnt++
			i++
		}

		if hasFive {
			if cnt > 4 {
				return nil, false
			}
			items = append(items, laughItem{place: place, digit: 5 + cnt})
		} else {
			if cnt > 5 {
				return nil, false
			}
			items = append(items, laughItem{place: place, digit: cnt})
		}
	}
	return items, len(items) > 0
}

// parseLaughPositional decodes positional laugh notation. Digits appear
// highest place first with places cycling every four decimal powers, so
// the absolute starting power is inferred: candidates congruent to the
// first place rune are tried from the smallest up, and the first one
// whose downward walk succeeds wins.
func parseLaughPositional(s string) (*big.Int, bool) {
	rest, neg, ok := stripLaughSign(s)
	if !ok {
		return nil, false
	}
	items, ok := scanLaughItems([]rune(rest))
	if !ok {
		return nil, false
	}

	firstMod := -1
	for _, it := range items {
		if it.place != 0 {
			firstMod = placeMod(it.place)
			break
		}
	}
	if firstMod < 0 {
		// Zero groups alone anchor no power.
		return nil, false
	}

	maxCandidates := len(items)*5 + 20
	for m := 0; m < maxCandidates; m++ {
		v, ok := walkLaughPlaces(items, firstMod+4*m)
		if !ok {
			continue
		}
		if neg {
			v.Neg(v)
		}
		return v, true
	}
	return nil, false
}

// walkLaughPlaces assigns strictly decreasing decimal powers to items
// starting at k0. A zero group jumps down one whole four-power group.
// Omitted places are implicit skips, bounded by a group counter that
// also counts each placed digit and aborts when four accumulate without
// an intervening zero group.
func walkLaughPlaces(items []laughItem, k0 int) (*big.Int, bool) {
	k := k0
	value := new(big.Int)
	used := 0

	for _, it := range items {
		if it.place == 0 {
			k -= 4
			if k < 0 {
				return nil, false
			}
			used = 0
			continue
		}

		for k >= 0 && placeForPower(k) != it.place {
			k--
			used++
			if used >= 4 {
				return nil, false
			}
		}
		if k < 0 {
			return nil, false
		}

		value.Add(value, new(big.Int).Mul(big.NewInt(int64(it.digit)), pow10(k)))
		k--
		used++
		if used >= 4 {
			used = 0
		}
	}
	return value, true
}
