package shunting

import (
	"strconv"
	"strings"
)

// token is one element of a scanned expression. A token is immutable once
// the tokenizer produces it.
type token struct {
	kind tokenKind
	num  float64  // kindNum
	op   op       // kindOp
	vr   variable // kindVar
	fn   function // kindFunc
	// pos is the 1-based column of the token in the whitespace-stripped
	// input.
	pos int
}

type tokenKind int8

const (
	kindNone tokenKind = iota
	// kindNum is a numeric literal.
	kindNum
	// kindVar is one of the variables x, y, z.
	kindVar
	// kindOp is a binary operator.
	kindOp
	// kindOpen is an opening parenthesis.
	kindOpen
	// kindClose is a closing parenthesis.
	kindClose
	// kindNeg is unary minus.
	kindNeg
	// kindFunc is one of the functions sin, cos, tan.
	kindFunc
)

//go:generate go mod edit -require=golang.org/x/tools@v0.1.0
//go:generate go mod download
//go:generate go run golang.org/x/tools/cmd/stringer -type=tokenKind -trimprefix=kind
//go:generate go mod tidy

// op identifies a binary operator.
type op int8

const (
	opNone op = iota
	opAdd
	opMul
	opDiv
	opPow
)

// opTable holds the fixed metadata for each operator: its source symbol,
// its precedence (higher binds tighter), and whether it is
// left-associative. Reductions are dispatched by a switch in the
// evaluator rather than stored here.
var opTable = [...]struct {
	sym  byte
	prec int8
	left bool
}{
	opAdd: {'+', 2, true},
	opMul: {'*', 3, true},
	opDiv: {'/', 3, true},
	opPow: {'^', 4, false},
}

// variable identifies one of the permitted variables.
type variable int8

const (
	varX variable = iota
	varY
	varZ
)

// function identifies one of the permitted functions.
type function int8

const (
	funcSin function = iota
	funcCos
	funcTan
)

var (
	varSyms  = [...]string{varX: "x", varY: "y", varZ: "z"}
	funcSyms = [...]string{funcSin: "sin", funcCos: "cos", funcTan: "tan"}
)

// String renders the token as it appears in source text.
func (t token) String() string {
	switch t.kind {
	case kindNum:
		return strconv.FormatFloat(t.num, 'g', -1, 64)
	case kindVar:
		return varSyms[t.vr]
	case kindOp:
		return string(opTable[t.op].sym)
	case kindOpen:
		return "("
	case kindClose:
		return ")"
	case kindNeg:
		return "-"
	case kindFunc:
		return funcSyms[t.fn]
	default:
		panic("shunting: invalid token kind " + strconv.Itoa(int(t.kind)))
	}
}

// joinTokens renders a token sequence as space-separated source symbols.
func joinTokens(toks []token) string {
	var b strings.Builder
	for i, t := range toks {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(t.String())
	}
	return b.String()
}
