package parser

import (
	"math/big"
	"strings"

	"mentonlang/types"
)

// CmpOp is the comparator of an if or while condition.
type CmpOp int

const (
	CmpEq CmpOp = iota
	CmpGt
	CmpLt
)

func (op CmpOp) String() string {
	switch op {
	case CmpGt:
		return ">"
	case CmpLt:
		return "<"
	default:
		return "=="
	}
}

// Condition compares the current register against a constant.
type Condition struct {
	N  *big.Int
	Op CmpOp
}

// ParseCondition reads the condition from a full if or while line. The
// second whitespace field is the numeral and the optional third field a
// comparator; anything past the comparator is ignored. Errors carry no
// line number, the engine attaches one.
func ParseCondition(line string, g Grammar) (Condition, error) {
	parts := strings.Fields(line)
	if len(parts) < 2 {
		return Condition{}, types.Syntaxf("Missing number in condition: '%s'", line)
	}

	n, ok := ParseNumber(parts[1], g)
	if !ok {
		return Condition{}, types.Syntaxf("Invalid number in condition: '%s'", parts[1])
	}

	cond := Condition{N: n, Op: CmpEq}
	if len(parts) >= 3 {
		switch parts[2] {
		case CMP_GT:
			cond.Op = CmpGt
		case CMP_LT:
			cond.Op = CmpLt
		default:
			return Condition{}, types.Syntaxf("Unknown comparator '%s' in: '%s'", parts[2], line)
		}
	}
	return cond, nil
}

// Holds reports whether the condition is true of the given value.
func (c Condition) Holds(cur *big.Int) bool {
	switch c.Op {
	case CmpGt:
		return cur.Cmp(c.N) > 0
	case CmpLt:
		return cur.Cmp(c.N) < 0
	default:
		return cur.Cmp(c.N) == 0
	}
}
