package vm

import (
	"math/big"

	"mentonlang/parser"
	"mentonlang/trace"
	"mentonlang/types"
)

var big256 = big.NewInt(256)

// renderOutput materializes one output block. Lines after the opener are
// collected verbatim until a terminator fixes the rendering mode, then
// rendered in order. Returns the instruction pointer just past the
// terminator. The block indexer never looks inside these lines, so block
// keywords are not valid items.
func (in *Interpreter) renderOutput(start int) (int, error) {
	ip := start + 1
	var items []string
	terminator := ""
	for ip < len(in.lines) {
		line := parser.CleanLine(in.lines[ip])
		if line == "" {
			ip++
			continue
		}
		if line == parser.TOK_PRINT_NUM_END || line == parser.TOK_PRINT_CHAR_END {
			terminator = line
			break
		}
		items = append(items, line)
		ip++
	}
	if terminator == "" {
		return 0, types.SyntaxAtf(start+1, "Unterminated output block")
	}

	var err error
	if terminator == parser.TOK_PRINT_NUM_END {
		err = in.renderNumeric(items, ip)
	} else {
		err = in.renderChars(items, ip)
	}
	if err != nil {
		return 0, err
	}
	return ip + 1, nil
}

// renderNumeric writes each item as a decimal integer. Register tokens
// read the register, anything else must be a numeral. The separator
// shortcuts pass through as a space and a newline.
func (in *Interpreter) renderNumeric(items []string, near int) error {
	for _, item := range items {
		switch item {
		case parser.TOK_OUT_SPACE:
			in.emit(" ")
		case parser.TOK_OUT_NEWLINE:
			in.emit("\n")
		default:
			if idx, ok := types.Registers.Lookup(item); ok {
				in.emit(in.regs[idx].String())
				continue
			}
			v, ok := parser.ParseNumber(item, in.Grammar)
			if !ok {
				return types.SyntaxAtf(near+1, "Invalid number/register in numeric output: '%s'", item)
			}
			in.emit(v.String())
		}
	}
	return nil
}

// renderChars writes each item as the character whose code is the item's
// value reduced modulo 256. Registers are not readable in this mode.
func (in *Interpreter) renderChars(items []string, near int) error {
	for _, item := range items {
		switch item {
		case parser.TOK_OUT_SPACE:
			in.emit(" ")
		case parser.TOK_OUT_NEWLINE:
			in.emit("\n")
		default:
			v, ok := parser.ParseNumber(item, in.Grammar)
			if !ok {
				return types.SyntaxAtf(near+1, "Invalid number in ASCII output (register not allowed): '%s'", item)
			}
			m := new(big.Int).Mod(v, big256)
			in.emit(string(rune(m.Int64())))
		}
	}
	return nil
}

func (in *Interpreter) emit(s string) {
	in.chunks = append(in.chunks, s)
	trace.Emit(s)
}
