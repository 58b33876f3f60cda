package sat

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTrail_AssignLevelsAndReasons(t *testing.T) {
	tr := NewTrail()
	for i := 0; i < 3; i++ {
		tr.AddVariable()
	}

	// A fact, a decision, and a propagation with an antecedent clause.
	fact := PositiveLiteral(0)
	decision := NegativeLiteral(1)
	forced := PositiveLiteral(2)
	antecedent := &Clause{lits: []Literal{forced, decision.Opposite()}}

	if !tr.Assign(fact, nil) {
		t.Fatalf("Assign(%v): want true", fact)
	}
	tr.NewDecisionLevel()
	if !tr.Assign(decision, nil) {
		t.Fatalf("Assign(%v): want true", decision)
	}
	if !tr.Assign(forced, antecedent) {
		t.Fatalf("Assign(%v): want true", forced)
	}

	if got := tr.Level(); got != 1 {
		t.Errorf("Level: want 1, got %d", got)
	}
	if got := tr.LevelOf(0); got != 0 {
		t.Errorf("LevelOf(0): want 0, got %d", got)
	}
	if got := tr.LevelOf(2); got != 1 {
		t.Errorf("LevelOf(2): want 1, got %d", got)
	}
	if got := tr.ReasonOf(2); got != antecedent {
		t.Errorf("ReasonOf(2): want the antecedent clause, got %v", got)
	}
	if got := tr.ReasonOf(1); got != nil {
		t.Errorf("ReasonOf(1): want nil for a decision, got %v", got)
	}
	if got := tr.Decision(1); got != decision {
		t.Errorf("Decision(1): want %v, got %v", decision, got)
	}
	if got := tr.Value(decision); got != True {
		t.Errorf("Value(%v): want true, got %v", decision, got)
	}
	if got := tr.VarValue(1); got != False {
		t.Errorf("VarValue(1): want false, got %v", got)
	}
}

func TestTrail_AssignContradiction(t *testing.T) {
	tr := NewTrail()
	tr.AddVariable()

	l := PositiveLiteral(0)
	if !tr.Assign(l, nil) {
		t.Fatalf("Assign(%v): want true", l)
	}
	if tr.Assign(l.Opposite(), nil) {
		t.Errorf("Assign(%v): want false, the opposite value is set", l.Opposite())
	}
	if !tr.Assign(l, nil) {
		t.Errorf("Assign(%v): want true, already assigned", l)
	}
	if got := tr.NumAssigned(); got != 1 {
		t.Errorf("NumAssigned: want 1, got %d", got)
	}
}

func TestTrail_UndoTo(t *testing.T) {
	tr := NewTrail()
	for i := 0; i < 4; i++ {
		tr.AddVariable()
	}

	tr.Assign(PositiveLiteral(0), nil) // fact at level 0
	tr.NewDecisionLevel()
	tr.Assign(PositiveLiteral(1), nil)
	tr.NewDecisionLevel()
	tr.Assign(PositiveLiteral(2), nil)
	tr.Assign(PositiveLiteral(3), &Clause{lits: []Literal{PositiveLiteral(3)}})

	undone := []int{}
	tr.UndoTo(1, func(varID int) { undone = append(undone, varID) })

	if diff := cmp.Diff([]int{3, 2}, undone); diff != "" {
		t.Errorf("undone variables mismatch (-want, +got):\n%s", diff)
	}
	if got := tr.Level(); got != 1 {
		t.Errorf("Level: want 1, got %d", got)
	}
	if got := tr.VarValue(2); got != Unknown {
		t.Errorf("VarValue(2): want unknown, got %v", got)
	}
	if got := tr.LevelOf(3); got != -1 {
		t.Errorf("LevelOf(3): want -1, got %d", got)
	}
	if got := tr.ReasonOf(3); got != nil {
		t.Errorf("ReasonOf(3): want nil, got %v", got)
	}
	if got := tr.VarValue(1); got != True {
		t.Errorf("VarValue(1): want true, level 1 must survive, got %v", got)
	}

	tr.UndoTo(0, nil)

	if got := tr.NumAssigned(); got != 1 {
		t.Errorf("NumAssigned: want 1, only the fact should remain, got %d", got)
	}
	if got := tr.VarValue(0); got != True {
		t.Errorf("VarValue(0): want true, facts survive any undo, got %v", got)
	}
}
