package types

import "fmt"

// SyntaxError reports a malformed program: an unknown statement, a bad
// numeral or condition, broken block nesting, or an unterminated output
// block. Line is 1-based; 0 means the offending line is not known yet.
type SyntaxError struct {
	Line int
	Msg  string
}

func (e *SyntaxError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("syntax error at line %d: %s", e.Line, e.Msg)
	}
	return fmt.Sprintf("syntax error: %s", e.Msg)
}

// Syntaxf builds a SyntaxError with no line attached.
func Syntaxf(format string, args ...interface{}) *SyntaxError {
	return &SyntaxError{Msg: fmt.Sprintf(format, args...)}
}

// SyntaxAtf builds a SyntaxError pinned to a 1-based source line.
func SyntaxAtf(line int, format string, args ...interface{}) *SyntaxError {
	return &SyntaxError{Line: line, Msg: fmt.Sprintf(format, args...)}
}

// InternalError reports an indexer/engine desynchronization: block metadata
// the index should have recorded is missing, or a recorded line is claimed
// by no block. User programs cannot trigger it.
type InternalError struct {
	Line int
	Msg  string
}

func (e *InternalError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("internal error at line %d: %s", e.Line, e.Msg)
	}
	return fmt.Sprintf("internal error: %s", e.Msg)
}

// Internalf builds an InternalError pinned to a 1-based source line.
func Internalf(line int, format string, args ...interface{}) *InternalError {
	return &InternalError{Line: line, Msg: fmt.Sprintf(format, args...)}
}

// LimitError reports that the host-imposed step budget ran out. The language
// itself permits unbounded loops; the guard belongs to the embedding.
type LimitError struct {
	Steps int64
	Line  int
}

func (e *LimitError) Error() string {
	return fmt.Sprintf("step limit of %d exceeded at line %d", e.Steps, e.Line)
}
