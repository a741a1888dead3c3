package lexer

// TokenType represents all the possible types of a lexical unit
type TokenType uint8

// List of types of lexical units
const (
	TokenInvalid   TokenType = iota
	TokenOpenList            // Open parenthesis: "("
	TokenCloseList           // Close parenthesis: ")"
	TokenInteger             // Unsigned decimal digits
	TokenSymbol              // Letters ([a-zA-Z]) or a single "+"
	TokenEOF                 // End of input
)

var tokenValues = map[TokenType][]rune{
	TokenOpenList:  []rune{'('},
	TokenCloseList: []rune{')'},
	TokenInteger:   []rune("0123456789"),
	TokenSymbol:    []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"),
}

// space, tab, carriage return and newline separate tokens but never produce
// one.
var whitespace = []rune(" \t\r\n")

var tokenNames = map[TokenType]string{
	TokenInvalid:   "invalid",
	TokenOpenList:  "open_list",
	TokenCloseList: "close_list",
	TokenInteger:   "integer",
	TokenSymbol:    "symbol",
	TokenEOF:       "EOF",
}

func (tt TokenType) String() string {
	if v, ok := tokenNames[tt]; ok {
		return v
	}
	return tokenNames[TokenInvalid]
}

func isTokenType(tt TokenType) func(r rune) bool {
	return func(r rune) bool {
		return isOneOf(tokenValues[tt], r)
	}
}

func isOneOf(set []rune, r rune) bool {
	for _, v := range set {
		if v == r {
			return true
		}
	}
	return false
}

func isWhitespace(r rune) bool {
	return isOneOf(whitespace, r)
}

func isPlus(r rune) bool {
	return r == '+'
}

func isNewLine(r rune) bool {
	return r == '\n'
}
