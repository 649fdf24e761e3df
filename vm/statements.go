package vm

import (
	"strings"

	"mentonlang/parser"
	"mentonlang/types"
)

// StmtKind identifies the statement a cleaned line dispatches to.
type StmtKind int

const (
	STMT_EMPTY StmtKind = iota
	STMT_SELECT
	STMT_OUTPUT
	STMT_IF
	STMT_ELSE
	STMT_WHILE
	STMT_END
	STMT_SET
	STMT_RESET
	STMT_ADD
	STMT_SUB
	STMT_MUL
	STMT_UNKNOWN
)

// StmtKindNames maps statement kinds to their trace names.
var StmtKindNames = map[StmtKind]string{
	STMT_EMPTY:   "EMPTY",
	STMT_SELECT:  "SELECT",
	STMT_OUTPUT:  "OUTPUT",
	STMT_IF:      "IF",
	STMT_ELSE:    "ELSE",
	STMT_WHILE:   "WHILE",
	STMT_END:     "END",
	STMT_SET:     "SET",
	STMT_RESET:   "RESET",
	STMT_ADD:     "ADD",
	STMT_SUB:     "SUB",
	STMT_MUL:     "MUL",
	STMT_UNKNOWN: "UNKNOWN",
}

func (k StmtKind) String() string {
	if name, ok := StmtKindNames[k]; ok {
		return name
	}
	return "UNKNOWN"
}

// Classify resolves the statement kind of a cleaned line. Match order is
// significant: an exact register token wins over everything, exact
// keywords win over prefixes, and prefix keywords match with no word
// boundary after them.
func Classify(line string) StmtKind {
	switch {
	case line == "":
		return STMT_EMPTY
	case types.Registers.IsRegister(line):
		return STMT_SELECT
	case line == parser.TOK_PRINT_START:
		return STMT_OUTPUT
	case strings.HasPrefix(line, parser.TOK_IF):
		return STMT_IF
	case line == parser.TOK_ELSE:
		return STMT_ELSE
	case strings.HasPrefix(line, parser.TOK_WHILE):
		return STMT_WHILE
	case line == parser.TOK_END:
		return STMT_END
	case strings.HasPrefix(line, parser.TOK_SET):
		return STMT_SET
	case line == parser.TOK_RESET:
		return STMT_RESET
	case strings.HasPrefix(line, parser.TOK_ADD):
		return STMT_ADD
	case strings.HasPrefix(line, parser.TOK_SUB):
		return STMT_SUB
	case strings.HasPrefix(line, parser.TOK_MUL):
		return STMT_MUL
	default:
		return STMT_UNKNOWN
	}
}
