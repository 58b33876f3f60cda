package sat

// analyze derives a new clause from the falsified clause confl by
// resolving backward through the antecedents of the literals assigned at
// the current decision level, in reverse trail order, until a single
// literal of the current level remains (the first unique implication
// point). The current level must be greater than 0.
//
// The derived clause is returned with the implication point's negation in
// first position, followed by literals of lower levels. The second return
// value is the backjump level: the highest level among the remaining
// literals, or 0 when the clause is unit. After the trail is rewound to
// that level the derived clause is unit and asserts its first literal.
func (s *Solver) analyze(confl *Clause) ([]Literal, int) {
	s.seen.Clear()

	// Number of literals of the current decision level encountered and not
	// yet resolved away. The analysis is complete when a resolution step
	// leaves exactly one of them.
	implicationPoints := 0

	learnt := []Literal{-1} // slot 0 is reserved for the implication point
	backjumpLevel := 0

	// Position in the trail of the next literal to look at. The trail is
	// read backward without undoing any assignment.
	next := len(s.trail.lits) - 1

	// Literal assigned by the antecedent under inspection. The conflict
	// clause itself assigned nothing, so every literal of it counts.
	skip := Literal(-1)

	for {
		for _, q := range confl.lits {
			if q == skip {
				continue
			}
			v := q.VarID()
			if s.seen.Contains(v) {
				continue
			}
			s.seen.Add(v)

			if s.trail.LevelOf(v) == s.trail.Level() {
				implicationPoints++
				continue
			}
			learnt = append(learnt, q)
			if level := s.trail.LevelOf(v); level > backjumpLevel {
				backjumpLevel = level
			}
		}

		// Move backward to the most recent trail literal involved in the
		// conflict so far. Literals of the current level sit at the end of
		// the trail, so the walk never crosses into lower levels while
		// implication points remain.
		var l Literal
		for {
			l = s.trail.lits[next]
			next--
			if s.seen.Contains(l.VarID()) {
				break
			}
		}

		implicationPoints--
		if implicationPoints <= 0 {
			learnt[0] = l.Opposite()
			return learnt, backjumpLevel
		}
		confl = s.trail.ReasonOf(l.VarID())
		skip = l
	}
}

// chronologicalStep computes the plain DPLL reaction to a conflict: undo
// the deepest decision level and flip that level's first literal. A
// conflict one level up then means both polarities failed there.
func (s *Solver) chronologicalStep() (Literal, int) {
	level := s.trail.Level()
	return s.trail.Decision(level).Opposite(), level - 1
}
