package parser

// Statement keywords. A keyword either claims the whole cleaned line
// (exact) or only its head (prefix), in which case the remainder of the
// line is the operand. Dispatch never requires a separator after a
// prefix keyword.
const (
	TOK_SET   = "하요하요" // prefix: set current register, default 0
	TOK_RESET = "바요바요" // exact: zero current register

	TOK_ADD = "누이 좋고" // prefix: add operand, default 1
	TOK_SUB = "매부 좋고" // prefix: subtract operand, default 1
	TOK_MUL = "아주 좋고" // prefix: multiply by register or number

	TOK_IF    = "건방진"  // prefix: conditional over current register
	TOK_WHILE = "좋다좋다" // prefix: loop over current register
	TOK_END   = "쉐끼마"  // exact: closes the innermost open block
	TOK_ELSE  = "정신이 나갔어 정신이" // exact: alternate branch of an if
)

// Comparators. A condition with no comparator tests equality.
const (
	CMP_GT = "응나멘똔"
	CMP_LT = "응너도혁"
)

// Output block tokens. The opener starts collecting lines; exactly one
// of the two terminators closes the block and fixes the rendering mode.
const (
	TOK_PRINT_START    = "와타시는"
	TOK_PRINT_NUM_END  = "이라는 것이야" // render items as decimal integers
	TOK_PRINT_CHAR_END = "한다는 것이야" // render items as single characters

	TOK_OUT_SPACE   = "~"
	TOK_OUT_NEWLINE = "ㅢ?!"
)

// Laugh numeral vocabulary. Place runes carry decimal powers cycling
// with period four; the five-bump phrase shifts a digit run from 1..4
// into 6..9. The zero-group rune exists only in the positional grammar.
const (
	LAUGH_ONES       = '훠'
	LAUGH_TENS       = '훳'
	LAUGH_HUNDREDS   = '허'
	LAUGH_THOUSANDS  = '헛'
	LAUGH_ZERO_GROUP = '찢'
)

const (
	LAUGH_NEG  = "뭐꼬" // optional negative prefix
	LAUGH_FIVE = "훠러" // five-bump phrase, two runes
)

// laughFiveRunes is LAUGH_FIVE decoded once for rune-wise scanning.
var laughFiveRunes = []rune(LAUGH_FIVE)
