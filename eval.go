package shunting

import (
	"math"
	"strconv"
)

// Context carries variable bindings for evaluating expressions. Create
// contexts with NewContext.
type Context struct {
	names map[string]float64
}

// ContextOption is an option used when creating a context.
type ContextOption interface {
	ctxOption()
}

type (
	varopt struct {
		name string
		val  float64
	}
	varsopt map[string]float64
)

func (varopt) ctxOption()  {}
func (varsopt) ctxOption() {}

// SetVar sets the value of a variable in the context.
func SetVar(name string, val float64) ContextOption {
	return varopt{name, val}
}

// SetVars sets the values of any number of variables in the context.
func SetVars(vars map[string]float64) ContextOption {
	return varsopt(vars)
}

// NewContext creates a new evaluation context. The given options are
// applied in order.
func NewContext(opts ...ContextOption) *Context {
	ctx := Context{names: make(map[string]float64)}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt := opt.(type) {
		case varopt:
			ctx.names[opt.name] = opt.val
		case varsopt:
			for k, v := range opt {
				ctx.names[k] = v
			}
		default:
			panic("shunting: unknown option type")
		}
	}
	return &ctx
}

// Set sets the value of a variable. Returns ctx for chaining.
func (ctx *Context) Set(name string, value float64) *Context {
	ctx.names[name] = value
	return ctx
}

// Lookup returns the value of a variable and whether the context has a
// binding for it.
func (ctx *Context) Lookup(name string) (float64, bool) {
	v, ok := ctx.names[name]
	return v, ok
}

// Clone creates a copy of a context and applies options to it. Options
// win over bindings copied from ctx.
func (ctx *Context) Clone(opts ...ContextOption) *Context {
	n := NewContext(opts...)
	for k, v := range ctx.names {
		if _, ok := n.names[k]; !ok {
			n.names[k] = v
		}
	}
	return n
}

// Eval reduces an expression's postfix token sequence to a single value
// with one left-to-right stack pass. The operand stack is created fresh
// for every call, so one context may evaluate from any number of
// goroutines concurrently.
//
// Negation and the functions quietly leave an empty stack alone; a
// binary operator with fewer than two operands returns an
// *OperandError. After the last token the stack must hold exactly one
// value, the result; any other count returns a *StackError.
//
// TODO(quayside): apply ctx bindings to variable tokens. For now a
// variable pops the top of the stack and pushes it back unchanged.
func (ctx *Context) Eval(e *Expr) (float64, error) {
	var stack []float64
	for _, tok := range e.rpn {
		switch tok.kind {
		case kindNum:
			stack = append(stack, tok.num)
		case kindVar:
			// Pop and push back unchanged: a no-op, whether or not the
			// stack is empty. The binding table is not consulted.
		case kindFunc:
			if n := len(stack); n > 0 {
				switch tok.fn {
				case funcSin:
					stack[n-1] = math.Sin(stack[n-1])
				case funcCos:
					stack[n-1] = math.Cos(stack[n-1])
				case funcTan:
					stack[n-1] = math.Tan(stack[n-1])
				default:
					panic("shunting: invalid function " + strconv.Itoa(int(tok.fn)))
				}
			}
		case kindNeg:
			if n := len(stack); n > 0 {
				stack[n-1] = -stack[n-1]
			}
		case kindOp:
			if len(stack) < 2 {
				return 0, &OperandError{Op: opTable[tok.op].sym, Col: tok.pos}
			}
			b := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			a := stack[len(stack)-1]
			switch tok.op {
			case opAdd:
				stack[len(stack)-1] = a + b
			case opMul:
				stack[len(stack)-1] = a * b
			case opDiv:
				stack[len(stack)-1] = a / b
			case opPow:
				stack[len(stack)-1] = math.Pow(a, b)
			default:
				panic("shunting: invalid operator " + strconv.Itoa(int(tok.op)))
			}
		default:
			panic("shunting: invalid token kind " + strconv.Itoa(int(tok.kind)) + " in postfix sequence")
		}
	}
	if len(stack) != 1 {
		return 0, &StackError{Size: len(stack)}
	}
	return stack[0], nil
}

// Eval parses src and evaluates it, treating every failure, whether
// unscannable input, mismatched parentheses, or an ill-formed postfix
// reduction, as an absent result. Variable values may be supplied with
// SetVar and SetVars.
func Eval(src string, opts ...ContextOption) (float64, bool) {
	e, err := Parse(src)
	if err != nil {
		return 0, false
	}
	v, err := NewContext(opts...).Eval(e)
	if err != nil {
		return 0, false
	}
	return v, true
}

// OperandError indicates a binary operator that found fewer than two
// values on the operand stack. It implements InputError.
type OperandError struct {
	// Op is the operator's symbol.
	Op byte
	// Col is the 1-based column of the operator in the
	// whitespace-stripped input.
	Col int
}

func (err *OperandError) Error() string {
	return "Missing operand for operator '" + string(err.Op) + "'"
}

func (err *OperandError) Pos() int {
	return err.Col
}

// StackError indicates an evaluation that ended with other than exactly
// one value on the operand stack.
type StackError struct {
	// Size is the number of values left on the stack.
	Size int
}

func (err *StackError) Error() string {
	return "Expected 1 value on stack, found " + strconv.Itoa(err.Size)
}
