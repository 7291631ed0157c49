package shunting

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	cases := []struct {
		src    string
		tokens []token
		err    bool
	}{
		{"", nil, false},
		// numbers
		{"0", []token{{kind: kindNum, num: 0, pos: 1}}, false},
		{"1", []token{{kind: kindNum, num: 1, pos: 1}}, false},
		{"1.5", []token{{kind: kindNum, num: 1.5, pos: 1}}, false},
		{".5", []token{{kind: kindNum, num: 0.5, pos: 1}}, false},
		{"9876543210", []token{{kind: kindNum, num: 9876543210, pos: 1}}, false},
		{"1.2.3", nil, true},
		{".", nil, true},
		// variables
		{"x", []token{{kind: kindVar, vr: varX, pos: 1}}, false},
		{"y", []token{{kind: kindVar, vr: varY, pos: 1}}, false},
		{"z", []token{{kind: kindVar, vr: varZ, pos: 1}}, false},
		{"xyz", []token{
			{kind: kindVar, vr: varX, pos: 1},
			{kind: kindVar, vr: varY, pos: 2},
			{kind: kindVar, vr: varZ, pos: 3},
		}, false},
		// a variable must not be read as the start of a number
		{"5x", []token{
			{kind: kindNum, num: 5, pos: 1},
			{kind: kindVar, vr: varX, pos: 2},
		}, false},
		// operators and parentheses
		{"+", []token{{kind: kindOp, op: opAdd, pos: 1}}, false},
		{"*", []token{{kind: kindOp, op: opMul, pos: 1}}, false},
		{"/", []token{{kind: kindOp, op: opDiv, pos: 1}}, false},
		{"^", []token{{kind: kindOp, op: opPow, pos: 1}}, false},
		{"()", []token{{kind: kindOpen, pos: 1}, {kind: kindClose, pos: 2}}, false},
		// minus always scans as negation
		{"-", []token{{kind: kindNeg, pos: 1}}, false},
		{"-1", []token{{kind: kindNeg, pos: 1}, {kind: kindNum, num: 1, pos: 2}}, false},
		{"1+-2", []token{
			{kind: kindNum, num: 1, pos: 1},
			{kind: kindOp, op: opAdd, pos: 2},
			{kind: kindNeg, pos: 3},
			{kind: kindNum, num: 2, pos: 4},
		}, false},
		{"--1", nil, true},
		{"5--3", nil, true},
		// functions
		{"sin", []token{{kind: kindFunc, fn: funcSin, pos: 1}}, false},
		{"cos", []token{{kind: kindFunc, fn: funcCos, pos: 1}}, false},
		{"tan", []token{{kind: kindFunc, fn: funcTan, pos: 1}}, false},
		{"sin(x)", []token{
			{kind: kindFunc, fn: funcSin, pos: 1},
			{kind: kindOpen, pos: 4},
			{kind: kindVar, vr: varX, pos: 5},
			{kind: kindClose, pos: 6},
		}, false},
		// unscannable input
		{"$", nil, true},
		{"1a", nil, true},
		{"notanexp", nil, true},
		{"si", nil, true},
	}
	for _, c := range cases {
		toks, err := tokenize(c.src)
		if c.err {
			if err == nil {
				t.Errorf("scanning %q: expected error, got %v", c.src, toks)
			}
			continue
		}
		if err != nil {
			t.Errorf("scanning %q: unexpected error %v", c.src, err)
			continue
		}
		if !reflect.DeepEqual(toks, c.tokens) {
			t.Errorf("scanning %q: want %v, got %v", c.src, c.tokens, toks)
		}
	}
}

func TestStripSpace(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"", ""},
		{" \t \r\n ", ""},
		{"4 + 2 * 3", "4+2*3"},
		{"5 * sin ( x )", "5*sin(x)"},
	}
	for _, c := range cases {
		if got := stripSpace(c.src); got != c.want {
			t.Errorf("stripping %q: want %q, got %q", c.src, c.want, got)
		}
	}
}

func TestTokenRoundTrip(t *testing.T) {
	// Scanning and re-serializing reproduces the source symbols in order.
	cases := []string{
		"( 1 + 2 ) * x",
		"sin ( x ) + cos ( y ) / tan ( z )",
		"- 5 ^ 2",
		"1.5 / 3",
		"x y z",
	}
	for _, src := range cases {
		toks, err := tokenize(stripSpace(src))
		if err != nil {
			t.Errorf("scanning %q: unexpected error %v", src, err)
			continue
		}
		if got := joinTokens(toks); got != src {
			t.Errorf("round-tripping %q: got %q", src, got)
		}
	}
}

func TestLexErrorPos(t *testing.T) {
	_, err := tokenize("1+$")
	lerr, ok := err.(*LexError)
	if !ok {
		t.Fatalf("error %#v is not *LexError", err)
	}
	if lerr.Pos() != 3 {
		t.Errorf("error position: want 3, got %d", lerr.Pos())
	}
	if lerr.Text != "$" {
		t.Errorf("error text: want %q, got %q", "$", lerr.Text)
	}
}
