package types

import "fmt"

// NamedRegisters lists the nine human-readable registers in declaration
// order. Their order fixes the first nine indices of the register set.
var NamedRegisters = []string{
	"멘똔",
	"배털",
	"정빵",
	"애플리프트",
	"깨무이",
	"혁두",
	"턱살개구리",
	"잉진이",
	"민짜이",
}

// RegisterBase is the seven-symbol alphabet for patterned registers.
// Row-major ordered pairs of it, glued with RegisterGlue, produce the
// remaining 49 tokens; the pair order defines their index order.
var RegisterBase = []string{"멘", "빵", "깨", "털", "두", "덜", "애"}

// RegisterGlue joins base symbols into a patterned register token (A가B가).
const RegisterGlue = "가"

// NamedCount is the required number of unique named registers.
const NamedCount = 9

// RegisterSet is the fixed bijection between register tokens and slot
// indices. It is built once at startup and never mutated; register values
// live in each interpreter instance, not here.
type RegisterSet struct {
	byToken map[string]int
	byIndex []string
}

// buildRegisterSet constructs the bijection from the given token lists.
// Named registers claim indices first, in order, skipping duplicates;
// patterned registers follow in row-major base order.
func buildRegisterSet(named, base []string, glue string) (*RegisterSet, error) {
	rs := &RegisterSet{byToken: make(map[string]int, len(named)+len(base)*len(base))}

	for _, name := range named {
		if _, ok := rs.byToken[name]; ok {
			continue
		}
		rs.byToken[name] = len(rs.byIndex)
		rs.byIndex = append(rs.byIndex, name)
	}
	if len(rs.byIndex) != NamedCount {
		return nil, fmt.Errorf("register set needs %d unique named registers, got %d", NamedCount, len(rs.byIndex))
	}

	for _, a := range base {
		for _, b := range base {
			token := a + glue + b + glue
			if _, ok := rs.byToken[token]; ok {
				return nil, fmt.Errorf("register token %q is not unique", token)
			}
			rs.byToken[token] = len(rs.byIndex)
			rs.byIndex = append(rs.byIndex, token)
		}
	}
	return rs, nil
}

// BuildRegisterSet builds the standard 58-register set. The token lists are
// compile-time constants, so any failure is a startup invariant violation,
// not a runtime condition.
func BuildRegisterSet() *RegisterSet {
	rs, err := buildRegisterSet(NamedRegisters, RegisterBase, RegisterGlue)
	if err != nil {
		panic(err)
	}
	return rs
}

// Registers is the shared register set. The mapping is immutable for the
// process lifetime.
var Registers = BuildRegisterSet()

// Lookup returns the slot index for a register token.
func (rs *RegisterSet) Lookup(token string) (int, bool) {
	idx, ok := rs.byToken[token]
	return idx, ok
}

// IsRegister reports whether token names a register.
func (rs *RegisterSet) IsRegister(token string) bool {
	_, ok := rs.byToken[token]
	return ok
}

// Token returns the register token at the given slot index.
func (rs *RegisterSet) Token(idx int) string {
	return rs.byIndex[idx]
}

// Count returns the number of registers in the set.
func (rs *RegisterSet) Count() int {
	return len(rs.byIndex)
}
