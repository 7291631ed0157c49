// Package shunting implements a small floating-point expression calculator.
//
// An expression is scanned into tokens, reordered from infix to postfix
// with the shunting-yard algorithm, and reduced to a single value with one
// left-to-right stack pass. The grammar covers numeric literals, the
// variables x, y, and z, the binary operators +, *, /, and ^, unary minus,
// parentheses, and the functions sin, cos, and tan (in radians). Every
// minus sign scans as unary negation; there is no binary subtraction.
//
// Variables let you attach bindings to a context with SetVar and reuse a
// parsed expression for many evaluations.
//
package shunting
