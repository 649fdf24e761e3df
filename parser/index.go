package parser

import (
	"sort"
	"strings"

	"mentonlang/types"
)

// IfBlock is the jump metadata for one if statement. Else is -1 when the
// block has no else branch.
type IfBlock struct {
	Start int
	Else  int
	End   int
}

// WhileBlock is the jump metadata for one while loop.
type WhileBlock struct {
	Start int
	End   int
}

// ProgramIndex holds the block structure of one program. Start lines map
// to their block, and else and end lines carry a direct reference to the
// block that owns them, so the engine never searches for an owner while
// running.
type ProgramIndex struct {
	ifs    map[int]*IfBlock
	whiles map[int]*WhileBlock

	elseOwner map[int]*IfBlock
	ifEnds    map[int]*IfBlock
	whileEnds map[int]*WhileBlock
}

// IndexBlocks resolves if/else/end and while/end nesting in one forward
// scan. Blocks nest like parentheses. An else may only attach to the
// innermost open if, once; every opened block must be closed by program
// end. The scan knows nothing of output blocks, so a stray end token
// inside one is diagnosed here.
func IndexBlocks(lines []string) (*ProgramIndex, error) {
	idx := &ProgramIndex{
		ifs:       make(map[int]*IfBlock),
		whiles:    make(map[int]*WhileBlock),
		elseOwner: make(map[int]*IfBlock),
		ifEnds:    make(map[int]*IfBlock),
		whileEnds: make(map[int]*WhileBlock),
	}

	type openBlock struct {
		kind   string
		start  int
		elseIP int
	}
	var stack []openBlock

	for ip, raw := range lines {
		line := CleanLine(raw)
		if line == "" {
			continue
		}

		switch {
		case strings.HasPrefix(line, TOK_IF):
			stack = append(stack, openBlock{kind: "if", start: ip, elseIP: -1})

		case line == TOK_ELSE:
			if len(stack) == 0 || stack[len(stack)-1].kind != "if" {
				return nil, types.SyntaxAtf(ip+1, "ELSE without IF")
			}
			top := &stack[len(stack)-1]
			if top.elseIP >= 0 {
				return nil, types.SyntaxAtf(ip+1, "Duplicate ELSE for IF at line %d", top.start+1)
			}
			top.elseIP = ip

		case strings.HasPrefix(line, TOK_WHILE):
			stack = append(stack, openBlock{kind: "while", start: ip, elseIP: -1})

		case line == TOK_END:
			if len(stack) == 0 {
				return nil, types.SyntaxAtf(ip+1, "END without block")
			}
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if top.kind == "if" {
				blk := &IfBlock{Start: top.start, Else: top.elseIP, End: ip}
				idx.ifs[top.start] = blk
				idx.ifEnds[ip] = blk
				if top.elseIP >= 0 {
					idx.elseOwner[top.elseIP] = blk
				}
			} else {
				blk := &WhileBlock{Start: top.start, End: ip}
				idx.whiles[top.start] = blk
				idx.whileEnds[ip] = blk
			}
		}
	}

	if len(stack) > 0 {
		top := stack[len(stack)-1]
		return nil, types.SyntaxAtf(top.start+1, "Unclosed block '%s'", top.kind)
	}
	return idx, nil
}

// IfAt returns the block opened by the if at line ip.
func (x *ProgramIndex) IfAt(ip int) (*IfBlock, bool) {
	blk, ok := x.ifs[ip]
	return blk, ok
}

// WhileAt returns the block opened by the while at line ip.
func (x *ProgramIndex) WhileAt(ip int) (*WhileBlock, bool) {
	blk, ok := x.whiles[ip]
	return blk, ok
}

// ElseOwner returns the if block whose else branch starts at line ip.
func (x *ProgramIndex) ElseOwner(ip int) (*IfBlock, bool) {
	blk, ok := x.elseOwner[ip]
	return blk, ok
}

// IfClosedBy returns the if block closed by the end at line ip.
func (x *ProgramIndex) IfClosedBy(ip int) (*IfBlock, bool) {
	blk, ok := x.ifEnds[ip]
	return blk, ok
}

// WhileClosedBy returns the while block closed by the end at line ip.
func (x *ProgramIndex) WhileClosedBy(ip int) (*WhileBlock, bool) {
	blk, ok := x.whileEnds[ip]
	return blk, ok
}

// IfStarts lists every if start line in program order.
func (x *ProgramIndex) IfStarts() []int {
	starts := make([]int, 0, len(x.ifs))
	for ip := range x.ifs {
		starts = append(starts, ip)
	}
	sort.Ints(starts)
	return starts
}

// WhileStarts lists every while start line in program order.
func (x *ProgramIndex) WhileStarts() []int {
	starts := make([]int, 0, len(x.whiles))
	for ip := range x.whiles {
		starts = append(starts, ip)
	}
	sort.Ints(starts)
	return starts
}
