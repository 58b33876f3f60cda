package sat

// Propagate applies unit propagation until saturation. Whenever a clause
// has all its literals false but one unassigned, the remaining literal is
// pushed on the trail with that clause as antecedent. Propagate returns
// the first falsified clause it encounters, or nil once no clause is unit.
//
// Which clause is reported when several are falsified at once depends on
// the order in which assignments were queued and is implementation
// defined.
func (s *Solver) Propagate() *Clause {
	for s.queue.Size() > 0 {
		l := s.queue.Pop()
		s.TotalPropagations++

		// Clauses containing the negation of l lost a literal and may have
		// become unit or falsified.
		for _, c := range s.occurs[l.Opposite()] {
			satisfied, unassigned, unit := c.examine(s.trail)
			switch {
			case satisfied:
			case unassigned == 0:
				s.queue.Clear()
				return c
			case unassigned == 1:
				s.log.Tracef("propagate %v from %v", unit, c)
				if !s.assign(unit, c) {
					// examine saw the literal unassigned, so the push
					// cannot contradict the trail.
					panic("inconsistent assignment of a unit literal")
				}
			}
		}
	}

	return nil
}

// assign pushes a literal on the trail and schedules it for propagation.
// It returns false if the literal's variable already holds the opposite
// value. Already-true literals are left untouched.
func (s *Solver) assign(l Literal, from *Clause) bool {
	switch s.trail.Value(l) {
	case True:
		return true
	case False:
		return false
	}
	s.trail.Assign(l, from)
	s.queue.Push(l)
	return true
}
