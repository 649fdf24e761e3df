package vm

import (
	"errors"
	"math/big"
	"strings"

	"mentonlang/parser"
	"mentonlang/trace"
	"mentonlang/types"
)

// Interpreter executes one program. It steps an instruction pointer
// over the line sequence, mutating a bank of arbitrary-precision
// registers, and materializes the output buffer once at the end of the
// run. An instance runs one program and is not safe for concurrent use.
type Interpreter struct {
	lines []string
	index *parser.ProgramIndex

	regs []*big.Int
	cur  int

	chunks []string

	// Grammar selects the laugh-number notation for every numeral in
	// the program. Set it before Run.
	Grammar parser.Grammar

	// StepLimit aborts the run after this many dispatched lines; zero
	// means unlimited. The language itself happily loops forever.
	StepLimit int64

	steps int64
}

// New indexes the program's blocks and prepares a fresh register bank
// with the first named register selected. Structural errors surface
// here, before anything executes.
func New(lines []string) (*Interpreter, error) {
	index, err := parser.IndexBlocks(lines)
	if err != nil {
		return nil, err
	}

	regs := make([]*big.Int, types.Registers.Count())
	for i := range regs {
		regs[i] = new(big.Int)
	}
	start, ok := types.Registers.Lookup(types.NamedRegisters[0])
	if !ok {
		return nil, types.Internalf(0, "start register %q missing from register set", types.NamedRegisters[0])
	}

	return &Interpreter{
		lines: lines,
		index: index,
		regs:  regs,
		cur:   start,
	}, nil
}

// Value returns a copy of the register named by token.
func (in *Interpreter) Value(token string) (*big.Int, bool) {
	idx, ok := types.Registers.Lookup(token)
	if !ok {
		return nil, false
	}
	return new(big.Int).Set(in.regs[idx]), true
}

// CurrentRegister returns the token of the currently selected register.
func (in *Interpreter) CurrentRegister() string {
	return types.Registers.Token(in.cur)
}

// Steps reports how many lines have been dispatched so far.
func (in *Interpreter) Steps() int64 {
	return in.steps
}

func (in *Interpreter) curValue() *big.Int {
	return in.regs[in.cur]
}

// Run steps the instruction pointer from the first line off the end of
// the program and returns the materialized output. Execution stops at
// the first error; output accumulated before it is discarded with it.
func (in *Interpreter) Run() (string, error) {
	ip := 0
	for ip >= 0 && ip < len(in.lines) {
		in.steps++
		if in.StepLimit > 0 && in.steps > in.StepLimit {
			return "", &types.LimitError{Steps: in.StepLimit, Line: ip + 1}
		}

		line := parser.CleanLine(in.lines[ip])
		kind := Classify(line)
		trace.Step(ip, kind.String(), line)

		next, err := in.exec(ip, line, kind)
		if err != nil {
			trace.Fault(ip, err)
			return "", err
		}
		ip = next
	}
	return strings.Join(in.chunks, ""), nil
}

func (in *Interpreter) exec(ip int, line string, kind StmtKind) (int, error) {
	switch kind {
	case STMT_EMPTY:
		return ip + 1, nil

	case STMT_SELECT:
		idx, ok := types.Registers.Lookup(line)
		if !ok {
			return 0, types.Internalf(ip+1, "register %q vanished from the register set", line)
		}
		in.cur = idx
		trace.Select(line, idx)
		return ip + 1, nil

	case STMT_OUTPUT:
		return in.renderOutput(ip)

	case STMT_IF:
		cond, err := parser.ParseCondition(line, in.Grammar)
		if err != nil {
			return 0, atLine(err, ip+1)
		}
		blk, ok := in.index.IfAt(ip)
		if !ok {
			return 0, types.Internalf(ip+1, "missing IF metadata")
		}
		if cond.Holds(in.curValue()) {
			return ip + 1, nil
		}
		if blk.Else >= 0 {
			trace.Jump(ip, blk.Else+1, "if false, to else body")
			return blk.Else + 1, nil
		}
		trace.Jump(ip, blk.End+1, "if false, past end")
		return blk.End + 1, nil

	case STMT_ELSE:
		blk, ok := in.index.ElseOwner(ip)
		if !ok {
			return 0, types.Internalf(ip+1, "ELSE with no owning IF")
		}
		trace.Jump(ip, blk.End+1, "past else body")
		return blk.End + 1, nil

	case STMT_WHILE:
		cond, err := parser.ParseCondition(line, in.Grammar)
		if err != nil {
			return 0, atLine(err, ip+1)
		}
		blk, ok := in.index.WhileAt(ip)
		if !ok {
			return 0, types.Internalf(ip+1, "missing WHILE metadata")
		}
		if cond.Holds(in.curValue()) {
			return ip + 1, nil
		}
		trace.Jump(ip, blk.End+1, "while false, past end")
		return blk.End + 1, nil

	case STMT_END:
		if blk, ok := in.index.WhileClosedBy(ip); ok {
			trace.Jump(ip, blk.Start, "loop back")
			return blk.Start, nil
		}
		if _, ok := in.index.IfClosedBy(ip); ok {
			return ip + 1, nil
		}
		return 0, types.Internalf(ip+1, "END closes no recorded block")

	case STMT_SET:
		rest := strings.TrimSpace(strings.TrimPrefix(line, parser.TOK_SET))
		if rest == "" {
			in.curValue().SetInt64(0)
			return ip + 1, nil
		}
		v, ok := parser.ParseNumber(rest, in.Grammar)
		if !ok {
			return 0, types.SyntaxAtf(ip+1, "Invalid number for SET: '%s'", rest)
		}
		in.curValue().Set(v)
		return ip + 1, nil

	case STMT_RESET:
		in.curValue().SetInt64(0)
		return ip + 1, nil

	case STMT_ADD, STMT_SUB:
		tok, name := parser.TOK_ADD, "ADD"
		if kind == STMT_SUB {
			tok, name = parser.TOK_SUB, "SUB"
		}
		rest := strings.TrimSpace(strings.TrimPrefix(line, tok))
		delta := big.NewInt(1)
		if rest != "" {
			v, ok := parser.ParseNumber(rest, in.Grammar)
			if !ok {
				return 0, types.SyntaxAtf(ip+1, "Invalid number for %s: '%s'", name, rest)
			}
			delta = v
		}
		cur := in.curValue()
		if kind == STMT_ADD {
			cur.Add(cur, delta)
		} else {
			cur.Sub(cur, delta)
		}
		return ip + 1, nil

	case STMT_MUL:
		rest := strings.TrimSpace(strings.TrimPrefix(line, parser.TOK_MUL))
		if rest == "" {
			return 0, types.SyntaxAtf(ip+1, "MUL missing operand")
		}
		var rhs *big.Int
		if idx, ok := types.Registers.Lookup(rest); ok {
			rhs = in.regs[idx]
		} else if v, ok := parser.ParseNumber(rest, in.Grammar); ok {
			rhs = v
		} else {
			return 0, types.SyntaxAtf(ip+1, "MUL operand must be a register token or number: '%s'", rest)
		}
		cur := in.curValue()
		cur.Mul(cur, rhs)
		return ip + 1, nil

	default:
		return 0, types.SyntaxAtf(ip+1, "Unknown statement: '%s'", line)
	}
}

// atLine pins a syntax error to its source line when the parser could
// not know it.
func atLine(err error, line int) error {
	var se *types.SyntaxError
	if errors.As(err, &se) && se.Line == 0 {
		se.Line = line
	}
	return err
}
