package sat

// Trail is the ordered record of all assigned literals together with the
// decision level and antecedent clause of each assignment. It is the only
// mutable search state: the solver pushes literals when deciding or
// propagating and rewinds with UndoTo when resolving a conflict.
//
// Invariant: the trail order is a topological order of the implication
// relation. Every literal forced by a clause appears after the other
// literals of that clause.
type Trail struct {
	assigns []LBool   // value of each literal, indexed by Literal
	level   []int     // level each variable was assigned at, -1 if unassigned
	reason  []*Clause // clause that forced each variable, nil for decisions
	lits    []Literal // literals in assignment order
	lim     []int     // trail length at the opening of each decision level
}

// NewTrail returns an empty trail over zero variables.
func NewTrail() *Trail {
	return &Trail{}
}

// AddVariable extends the trail with one unassigned variable.
func (t *Trail) AddVariable() {
	t.assigns = append(t.assigns, Unknown, Unknown)
	t.level = append(t.level, -1)
	t.reason = append(t.reason, nil)
}

// NumVariables returns the number of variables the trail covers.
func (t *Trail) NumVariables() int {
	return len(t.assigns) / 2
}

// NumAssigned returns the number of assigned variables.
func (t *Trail) NumAssigned() int {
	return len(t.lits)
}

// Value returns the literal's value under the current assignment.
func (t *Trail) Value(l Literal) LBool {
	return t.assigns[l]
}

// VarValue returns the variable's value under the current assignment.
func (t *Trail) VarValue(varID int) LBool {
	return t.assigns[PositiveLiteral(varID)]
}

// Level returns the current decision level. Level 0 holds the facts that
// are true unconditionally.
func (t *Trail) Level() int {
	return len(t.lim)
}

// LevelOf returns the decision level at which the variable was assigned,
// or -1 if it is unassigned.
func (t *Trail) LevelOf(varID int) int {
	return t.level[varID]
}

// ReasonOf returns the clause that forced the variable's assignment. It
// returns nil for unassigned variables, decisions and root-level facts.
func (t *Trail) ReasonOf(varID int) *Clause {
	return t.reason[varID]
}

// Assign pushes a literal at the current decision level with the given
// antecedent. It returns false if the literal's variable already holds the
// opposite value, and true otherwise; when the literal is already true the
// trail is left untouched.
func (t *Trail) Assign(l Literal, from *Clause) bool {
	switch t.assigns[l] {
	case False:
		return false
	case True:
		return true
	}

	v := l.VarID()
	t.assigns[l] = True
	t.assigns[l.Opposite()] = False
	t.level[v] = t.Level()
	t.reason[v] = from
	t.lits = append(t.lits, l)
	return true
}

// NewDecisionLevel opens a new decision level. The next literal pushed is
// that level's decision.
func (t *Trail) NewDecisionLevel() {
	t.lim = append(t.lim, len(t.lits))
}

// Decision returns the first literal assigned at the given level, which
// must be in [1, Level()].
func (t *Trail) Decision(level int) Literal {
	return t.lits[t.lim[level-1]]
}

// UndoTo pops every literal assigned at a level greater than level,
// restoring the assignment to the state it was in when that level was
// first entered. onUndo, if non-nil, is called with each unassigned
// variable, most recently assigned first.
func (t *Trail) UndoTo(level int, onUndo func(varID int)) {
	for t.Level() > level {
		lim := t.lim[len(t.lim)-1]
		for len(t.lits) > lim {
			l := t.lits[len(t.lits)-1]
			v := l.VarID()
			t.assigns[l] = Unknown
			t.assigns[l.Opposite()] = Unknown
			t.level[v] = -1
			t.reason[v] = nil
			t.lits = t.lits[:len(t.lits)-1]
			if onUndo != nil {
				onUndo(v)
			}
		}
		t.lim = t.lim[:len(t.lim)-1]
	}
}
