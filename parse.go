package shunting

import "strconv"

// Expr is a tokenized expression reordered into postfix form, ready to
// evaluate with a Context.
type Expr struct {
	// rpn is the postfix token sequence.
	rpn []token
	// names is the list of variable names used in the expression.
	names []string
}

// Parse scans src into tokens and reorders them into postfix order.
// Whitespace anywhere in src is ignored. The error is a *LexError when
// part of src matches no token grammar and a *ParenError when
// parentheses are mismatched.
func Parse(src string) (*Expr, error) {
	toks, err := tokenize(stripSpace(src))
	if err != nil {
		return nil, err
	}
	rpn, err := shunt(toks)
	if err != nil {
		return nil, err
	}
	return &Expr{rpn: rpn, names: varNames(toks)}, nil
}

// Vars returns the variable names used when evaluating the expression, in
// x, y, z order.
func (e *Expr) Vars() []string {
	return append(([]string)(nil), e.names...)
}

// String renders the expression in postfix order with one space between
// tokens.
func (e *Expr) String() string {
	return joinTokens(e.rpn)
}

// varNames lists the distinct variables in toks in x, y, z order.
func varNames(toks []token) []string {
	var seen [len(varSyms)]bool
	for _, t := range toks {
		if t.kind == kindVar {
			seen[t.vr] = true
		}
	}
	var names []string
	for v, ok := range seen {
		if ok {
			names = append(names, varSyms[v])
		}
	}
	return names
}

// shunt reorders an infix token sequence into postfix order using the
// shunting-yard algorithm. Numbers and variables pass straight to the
// output. Parentheses, functions, and negations wait on the operator
// stack until their scope closes. A binary operator first pops operators
// of higher precedence, or of equal precedence when the popped operator
// is left-associative, then takes their place on the stack; the
// right-associative ^ does not pop on equal precedence, so 2^3^2 groups
// as 2^(3^2).
func shunt(toks []token) ([]token, error) {
	out := make([]token, 0, len(toks))
	var ops []token
	for _, tok := range toks {
		switch tok.kind {
		case kindNum, kindVar:
			out = append(out, tok)
		case kindOpen, kindFunc, kindNeg:
			ops = append(ops, tok)
		case kindOp:
			q := opTable[tok.op].prec
			for len(ops) > 0 {
				top := ops[len(ops)-1]
				if top.kind != kindOp {
					if top.kind == kindNum || top.kind == kindVar {
						panic("shunting: operand on operator stack")
					}
					break
				}
				t := opTable[top.op]
				if t.prec < q || t.prec == q && !t.left {
					break
				}
				out = append(out, top)
				ops = ops[:len(ops)-1]
			}
			ops = append(ops, tok)
		case kindClose:
			if _, ok := tilt(&ops, &out); !ok {
				return nil, &ParenError{Paren: ')', Col: tok.pos}
			}
		default:
			panic("shunting: invalid token kind " + strconv.Itoa(int(tok.kind)))
		}
	}
	// Drain the stack. A left parenthesis surfacing here was never
	// closed.
	if open, ok := tilt(&ops, &out); ok {
		return nil, &ParenError{Paren: '(', Col: open.pos}
	}
	return out, nil
}

// tilt pops operators to the output until it pops a left parenthesis,
// reporting the parenthesis and whether it found one. The parenthesis is
// discarded, not emitted.
func tilt(ops, out *[]token) (token, bool) {
	for len(*ops) > 0 {
		top := (*ops)[len(*ops)-1]
		*ops = (*ops)[:len(*ops)-1]
		if top.kind == kindOpen {
			return top, true
		}
		*out = append(*out, top)
	}
	return token{}, false
}

// ParenError indicates a parenthesis with no match. It implements
// InputError.
type ParenError struct {
	// Paren is the unmatched parenthesis, '(' or ')'.
	Paren byte
	// Col is the 1-based column of the unmatched parenthesis in the
	// whitespace-stripped input.
	Col int
}

func (err *ParenError) Error() string {
	return "Mismatched '" + string(err.Paren) + "'"
}

func (err *ParenError) Pos() int {
	return err.Col
}
