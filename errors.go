package shunting

// InputError is an error with position information. Every error that
// points at a single token of invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the 1-based column of the token that caused the error,
	// counted in the whitespace-stripped input.
	Pos() int
}

var (
	_ InputError = (*LexError)(nil)
	_ InputError = (*ParenError)(nil)
	_ InputError = (*OperandError)(nil)
)
