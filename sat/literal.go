package sat

import "strconv"

// Literal represents a boolean variable or its negation. Variables are
// numbered from 0; variable v is encoded as literal 2*v and its negation as
// 2*v+1, so that a literal's negation is obtained by flipping its lowest
// bit.
type Literal int

// PositiveLiteral returns the literal asserting variable varID.
func PositiveLiteral(varID int) Literal {
	return Literal(varID * 2)
}

// NegativeLiteral returns the literal negating variable varID.
func NegativeLiteral(varID int) Literal {
	return PositiveLiteral(varID).Opposite()
}

// LiteralFromDIMACS converts a non-zero DIMACS literal (magnitude = 1-based
// variable, sign = polarity) into a Literal.
func LiteralFromDIMACS(l int) Literal {
	if l < 0 {
		return NegativeLiteral(-l - 1)
	}
	return PositiveLiteral(l - 1)
}

// VarID returns the ID of the literal's variable.
func (l Literal) VarID() int {
	return int(l) / 2
}

// IsPositive returns true if and only if the literal represents the value
// of its variable (i.e. not its negation).
func (l Literal) IsPositive() bool {
	return l&1 == 0
}

// Opposite returns the opposite literal.
func (l Literal) Opposite() Literal {
	return l ^ 1
}

// ToDIMACS returns the literal in DIMACS convention.
func (l Literal) ToDIMACS() int {
	if l.IsPositive() {
		return l.VarID() + 1
	}
	return -(l.VarID() + 1)
}

func (l Literal) String() string {
	return strconv.Itoa(l.ToDIMACS())
}
