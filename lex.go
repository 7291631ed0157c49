package shunting

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// stripSpace removes every whitespace rune from s. The tokenizer operates
// on the stripped text, so token columns count non-space characters only.
func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// tokenize scans src, which must contain no whitespace, into an ordered
// token sequence. The entire input must be consumed; a prefix that
// matches no token grammar is a *LexError.
func tokenize(src string) ([]token, error) {
	var toks []token
	for i := 0; i < len(src); {
		tok, n, err := scanToken(src[i:], i+1)
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
		i += n
	}
	return toks, nil
}

// scanToken matches one token at the start of rest and reports how much
// input it consumed. Alternatives are tried in a fixed order: number,
// variable, operator or parenthesis, function. The order matters: a bare
// x must not begin a number, and sin must fall through past the variable
// and operator alternatives.
func scanToken(rest string, col int) (token, int, error) {
	if n := numLen(rest); n > 0 {
		f, err := strconv.ParseFloat(rest[:n], 64)
		if err != nil {
			return token{}, 0, &LexError{Text: rest[:n], Kind: "number", Col: col}
		}
		return token{kind: kindNum, num: f, pos: col}, n, nil
	}
	switch rest[0] {
	case 'x':
		return token{kind: kindVar, vr: varX, pos: col}, 1, nil
	case 'y':
		return token{kind: kindVar, vr: varY, pos: col}, 1, nil
	case 'z':
		return token{kind: kindVar, vr: varZ, pos: col}, 1, nil
	case '+':
		return token{kind: kindOp, op: opAdd, pos: col}, 1, nil
	case '*':
		return token{kind: kindOp, op: opMul, pos: col}, 1, nil
	case '/':
		return token{kind: kindOp, op: opDiv, pos: col}, 1, nil
	case '^':
		return token{kind: kindOp, op: opPow, pos: col}, 1, nil
	case '(':
		return token{kind: kindOpen, pos: col}, 1, nil
	case ')':
		return token{kind: kindClose, pos: col}, 1, nil
	case '-':
		// One byte of lookahead: a lone minus is always unary negation,
		// and a doubled minus matches no token grammar at all.
		if len(rest) > 1 && rest[1] == '-' {
			return token{}, 0, &LexError{Text: "--", Kind: "operator", Col: col}
		}
		return token{kind: kindNeg, pos: col}, 1, nil
	}
	switch {
	case strings.HasPrefix(rest, "sin"):
		return token{kind: kindFunc, fn: funcSin, pos: col}, 3, nil
	case strings.HasPrefix(rest, "cos"):
		return token{kind: kindFunc, fn: funcCos, pos: col}, 3, nil
	case strings.HasPrefix(rest, "tan"):
		return token{kind: kindFunc, fn: funcTan, pos: col}, 3, nil
	}
	r, _ := utf8.DecodeRuneInString(rest)
	return token{}, 0, &LexError{Text: string(r), Col: col}
}

// numLen reports the length of the leading run of digits and decimal
// points in s.
func numLen(s string) int {
	i := 0
	for i < len(s) && (s[i] == '.' || '0' <= s[i] && s[i] <= '9') {
		i++
	}
	return i
}

// LexError indicates input that matches no token grammar. It implements
// InputError.
type LexError struct {
	// Text is the text that failed to scan.
	Text string
	// Kind is the grammar that rejected the text, "number" or "operator",
	// or the empty string when no grammar matched at all.
	Kind string
	// Col is the 1-based column of the failure in the whitespace-stripped
	// input.
	Col int
}

func (err *LexError) Error() string {
	pos := "column " + strconv.Itoa(err.Col)
	if err.Kind == "" {
		return "invalid token at " + pos + ": " + err.Text
	}
	return "invalid " + err.Kind + " token at " + pos + ": " + err.Text
}

func (err *LexError) Pos() int {
	return err.Col
}
