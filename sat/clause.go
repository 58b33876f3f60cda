package sat

import (
	"strings"
)

// Clause is a disjunction of literals. A clause's literal slice is
// duplicate-free; tautological clauses (containing a variable and its
// negation) are filtered out before construction, see Solver.AddClause.
type Clause struct {
	learnt bool

	// The clause's literals. Always contains at least two literals: empty
	// and unit clauses are handled directly by the solver.
	lits []Literal
}

// Literals returns the clause's literals. The returned slice must not be
// modified.
func (c *Clause) Literals() []Literal {
	return c.lits
}

// Learnt returns true if the clause was derived by conflict analysis
// rather than being part of the input formula.
func (c *Clause) Learnt() bool {
	return c.learnt
}

// examine evaluates the clause under the trail's partial assignment. It
// returns whether at least one literal is true, the number of unassigned
// literals, and one unassigned literal (the clause's unit literal when
// unassigned == 1 and satisfied is false).
func (c *Clause) examine(t *Trail) (satisfied bool, unassigned int, unit Literal) {
	for _, l := range c.lits {
		switch t.Value(l) {
		case True:
			return true, 0, -1
		case Unknown:
			unassigned++
			unit = l
		}
	}
	return false, unassigned, unit
}

// Satisfied returns true if at least one of the clause's literals is true
// under the trail's assignment.
func (c *Clause) Satisfied(t *Trail) bool {
	satisfied, _, _ := c.examine(t)
	return satisfied
}

// Falsified returns true if every literal of the clause is false under the
// trail's assignment.
func (c *Clause) Falsified(t *Trail) bool {
	satisfied, unassigned, _ := c.examine(t)
	return !satisfied && unassigned == 0
}

// Unit returns the clause's single unassigned literal if the clause is
// unit under the trail's assignment, that is not satisfied and with
// exactly one literal left unassigned.
func (c *Clause) Unit(t *Trail) (Literal, bool) {
	satisfied, unassigned, unit := c.examine(t)
	if satisfied || unassigned != 1 {
		return -1, false
	}
	return unit, true
}

// normalize removes duplicate literals in place and reports whether the
// clause is a tautology. The literals of a tautology are meaningless and
// must be discarded.
func normalize(lits []Literal) ([]Literal, bool) {
	seen := map[Literal]struct{}{}
	j := 0
	for _, l := range lits {
		if _, ok := seen[l.Opposite()]; ok {
			return nil, true
		}
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		lits[j] = l
		j++
	}
	return lits[:j], false
}

func (c *Clause) String() string {
	sb := strings.Builder{}
	sb.WriteString("Clause[")
	for i, l := range c.lits {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(l.String())
	}
	sb.WriteByte(']')
	return sb.String()
}
