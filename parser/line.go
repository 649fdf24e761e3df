package parser

import "strings"

// NEWLINE_TOKEN is substituted with a real newline before the source is
// split into lines. It is the only token rewritten rather than parsed.
const NEWLINE_TOKEN = "으이?"

// COMMENT_MARKER starts a comment running to the end of the line.
const COMMENT_MARKER = "#"

// Preprocess expands every newline token in raw source text. It must run
// exactly once, before SplitLines.
func Preprocess(src string) string {
	return strings.ReplaceAll(src, NEWLINE_TOKEN, "\n")
}

// SplitLines splits preprocessed source into physical lines. Line indices
// are the instruction-pointer domain; even blank lines occupy a slot.
func SplitLines(src string) []string {
	return strings.Split(src, "\n")
}

// CleanLine strips the comment and surrounding whitespace from one
// physical line. A line that cleans to the empty string is a no-op but
// still counts toward line numbering.
func CleanLine(raw string) string {
	if i := strings.Index(raw, COMMENT_MARKER); i >= 0 {
		raw = raw[:i]
	}
	return strings.TrimSpace(raw)
}
