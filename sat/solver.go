package sat

import (
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

// Strategy selects how the solver reacts to conflicts. The three
// strategies share the same trail, propagation and decision machinery and
// only differ in how much of the conflict's structure they exploit.
type Strategy int

const (
	// Plain is chronological DPLL: every conflict flips the most recent
	// decision.
	Plain Strategy = iota

	// Backjump analyzes each conflict to jump back to the earliest level
	// still relevant to it, skipping decisions proven irrelevant. The
	// formula is left untouched.
	Backjump

	// CDCL is backjumping plus clause learning: the clause derived from
	// each conflict is added to the formula for the rest of the search.
	CDCL
)

func (st Strategy) String() string {
	switch st {
	case Plain:
		return "plain"
	case Backjump:
		return "backjump"
	case CDCL:
		return "cdcl"
	default:
		return fmt.Sprintf("Strategy(%d)", int(st))
	}
}

// StrategyFromName returns the strategy named by one of "plain",
// "backjump" and "cdcl".
func StrategyFromName(name string) (Strategy, error) {
	switch name {
	case "plain":
		return Plain, nil
	case "backjump":
		return Backjump, nil
	case "cdcl":
		return CDCL, nil
	default:
		return 0, fmt.Errorf("unknown strategy %q", name)
	}
}

// ErrMalformedClause reports an added clause referring to a variable that
// was never added to the solver.
var ErrMalformedClause = errors.New("malformed clause")

type Options struct {
	Strategy     Strategy
	MaxConflicts int64         // negative means no limit
	Timeout      time.Duration // negative means no limit

	// Logger receives debug traces of decisions, conflicts and learned
	// clauses. Defaults to logrus.StandardLogger(), which is silent below
	// the info level.
	Logger *logrus.Logger
}

var DefaultOptions = Options{
	Strategy:     CDCL,
	MaxConflicts: -1,
	Timeout:      -1,
}

type Solver struct {
	strategy Strategy

	// Clause database. learnts grows by one clause per conflict in CDCL
	// mode and stays empty otherwise.
	constraints []*Clause
	learnts     []*Clause

	// For each literal, the clauses containing it. When a literal becomes
	// true, the clauses attached to its negation are the only ones that
	// may have become unit or falsified.
	occurs [][]*Clause

	// Assignment state and pending propagations.
	trail *Trail
	queue *Queue[Literal]
	order *VarOrder

	// Whether the problem has reached a root-level conflict.
	unsat bool

	// Shared by analyze calls to mark visited variables.
	seen *ResetSet

	// Search statistics.
	TotalConflicts    int64
	TotalDecisions    int64
	TotalPropagations int64
	startTime         time.Time

	// Stop conditions.
	hasStopCond bool
	maxConflict int64
	timeout     time.Duration

	// Models found so far, one per Solve call that returned True.
	Models [][]bool

	log *logrus.Logger
}

// NewDefaultSolver returns a solver configured with default options. This
// is equivalent to calling NewSolver with DefaultOptions.
func NewDefaultSolver() *Solver {
	return NewSolver(DefaultOptions)
}

func NewSolver(ops Options) *Solver {
	s := &Solver{
		strategy:    ops.Strategy,
		trail:       NewTrail(),
		queue:       NewQueue[Literal](128),
		seen:        NewResetSet(),
		maxConflict: -1,
		timeout:     -1,
		log:         ops.Logger,
	}
	if s.log == nil {
		s.log = logrus.StandardLogger()
	}

	if ops.MaxConflicts >= 0 {
		s.hasStopCond = true
		s.maxConflict = ops.MaxConflicts
	}
	if ops.Timeout >= 0 {
		s.hasStopCond = true
		s.timeout = ops.Timeout
	}

	return s
}

func (s *Solver) shouldStop() bool {
	if !s.hasStopCond {
		return false
	}
	if s.maxConflict >= 0 && s.maxConflict <= s.TotalConflicts {
		return true
	}
	if s.timeout >= 0 && s.timeout <= time.Since(s.startTime) {
		return true
	}

	return false
}

func (s *Solver) NumVariables() int {
	return s.trail.NumVariables()
}

func (s *Solver) NumAssigns() int {
	return s.trail.NumAssigned()
}

func (s *Solver) NumConstraints() int {
	return len(s.constraints)
}

func (s *Solver) NumLearnts() int {
	return len(s.learnts)
}

// VarValue returns the variable's value under the current assignment.
func (s *Solver) VarValue(varID int) LBool {
	return s.trail.VarValue(varID)
}

// AddVariable adds a new variable to the solver and returns its ID.
func (s *Solver) AddVariable() int {
	index := s.NumVariables()
	s.trail.AddVariable()
	s.occurs = append(s.occurs, nil)
	s.occurs = append(s.occurs, nil)
	s.seen.Expand()
	return index
}

// AddClause adds a clause to the formula. Duplicate literals are removed
// and tautological clauses are silently dropped. Adding the empty clause,
// or a clause contradicting the root-level assignment, makes the formula
// unsatisfiable. Clauses can only be added when the solver is not in the
// middle of a search, and referring to a variable that was never added is
// an error.
func (s *Solver) AddClause(lits []Literal) error {
	if s.trail.Level() != 0 {
		return fmt.Errorf("can only add clauses at the root level")
	}
	for _, l := range lits {
		if v := l.VarID(); v < 0 || v >= s.NumVariables() {
			return fmt.Errorf("%w: literal %v refers to an unknown variable", ErrMalformedClause, l)
		}
	}

	lits, tautology := normalize(lits)
	if tautology {
		return nil // always satisfied
	}

	// Literals already false at the root level can never satisfy the
	// clause; a literal already true makes it permanently satisfied.
	j := 0
	for _, l := range lits {
		switch s.trail.Value(l) {
		case True:
			return nil
		case False:
		default:
			lits[j] = l
			j++
		}
	}
	lits = lits[:j]

	switch len(lits) {
	case 0:
		s.log.Debugf("empty clause added, formula is unsatisfiable")
		s.unsat = true
	case 1:
		if !s.assign(lits[0], nil) {
			s.unsat = true
		}
	default:
		s.attach(&Clause{lits: lits})
	}
	return nil
}

// attach registers a clause in the clause database and occurrence lists.
func (s *Solver) attach(c *Clause) {
	if c.learnt {
		s.learnts = append(s.learnts, c)
	} else {
		s.constraints = append(s.constraints, c)
	}
	for _, l := range c.lits {
		s.occurs[l] = append(s.occurs[l], c)
	}
}

// Solve searches for a model of the formula. It returns True if one was
// found (and appends it to Models), False if the formula is
// unsatisfiable, or Unknown if a stop condition triggered first. The
// solver is left at the root level, so clauses can be added and Solve
// called again.
func (s *Solver) Solve() LBool {
	s.startTime = time.Now()
	if s.unsat {
		return False
	}
	s.order = NewVarOrder(s.trail, s.NumVariables())

	for !s.shouldStop() {
		if conflict := s.Propagate(); conflict != nil {
			s.TotalConflicts++
			if s.trail.Level() == 0 {
				// The conflict does not depend on any decision.
				s.unsat = true
				return False
			}
			s.resolveConflict(conflict)
			continue
		}

		// No conflict and propagation is saturated.

		if s.trail.NumAssigned() == s.NumVariables() {
			s.saveModel()
			s.cancelUntil(0)
			return True
		}

		l := s.order.Select()
		s.TotalDecisions++
		s.log.Debugf("decide %v at level %d", l, s.trail.Level()+1)
		s.trail.NewDecisionLevel()
		s.assign(l, nil)
	}

	s.cancelUntil(0)
	return Unknown
}

// resolveConflict computes a backtracking point for the falsified clause,
// rewinds the trail to it, and asserts the literal that redirects the
// search. Must be called at a decision level greater than 0.
func (s *Solver) resolveConflict(conflict *Clause) {
	switch s.strategy {
	case Plain:
		flip, level := s.chronologicalStep()
		s.log.Debugf("conflict %v: backtrack to level %d, flip %v", conflict, level, flip)
		s.cancelUntil(level)
		s.assign(flip, nil)

	case Backjump:
		derived, level := s.analyze(conflict)
		s.log.Debugf("conflict %v: backjump to level %d", conflict, level)
		s.cancelUntil(level)
		s.assertDerived(derived, false)

	case CDCL:
		derived, level := s.analyze(conflict)
		s.log.Debugf("conflict %v: learn %v, backjump to level %d", conflict, derived, level)
		s.cancelUntil(level)
		s.assertDerived(derived, true)
	}
}

// assertDerived asserts the first literal of a clause derived by conflict
// analysis; the trail must already be rewound to the clause's backjump
// level, at which the clause is unit. When learn is set the clause also
// joins the formula; otherwise it only serves as the literal's
// antecedent, so that later analyses can resolve through it while the
// formula stays untouched.
func (s *Solver) assertDerived(lits []Literal, learn bool) {
	if len(lits) == 1 {
		// A unit derivation is a fact, asserted at the root level.
		if !s.assign(lits[0], nil) {
			panic("inconsistent assertion after backjump")
		}
		return
	}

	c := &Clause{learnt: true, lits: lits}
	if learn {
		s.attach(c)
	}
	if !s.assign(lits[0], c) {
		panic("inconsistent assertion after backjump")
	}
}

// cancelUntil rewinds the trail to the given decision level and returns
// the unassigned variables to the decision order.
func (s *Solver) cancelUntil(level int) {
	s.trail.UndoTo(level, s.order.Reinsert)
}

func (s *Solver) saveModel() {
	model := make([]bool, s.NumVariables())
	for i := range model {
		lb := s.VarValue(i)
		if lb == Unknown {
			panic("not a model")
		}
		model[i] = lb == True
	}
	s.Models = append(s.Models, model)
}
