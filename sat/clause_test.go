package sat

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNormalize_RemovesDuplicates(t *testing.T) {
	lits := []Literal{PositiveLiteral(0), PositiveLiteral(1), PositiveLiteral(0)}

	got, tautology := normalize(lits)

	if tautology {
		t.Fatalf("normalize: clause is not a tautology")
	}
	want := []Literal{PositiveLiteral(0), PositiveLiteral(1)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("normalize mismatch (-want, +got):\n%s", diff)
	}
}

func TestNormalize_DetectsTautology(t *testing.T) {
	lits := []Literal{PositiveLiteral(0), NegativeLiteral(1), NegativeLiteral(0)}

	if _, tautology := normalize(lits); !tautology {
		t.Errorf("normalize: want tautology")
	}
}

func TestClause_StatusQueries(t *testing.T) {
	tr := NewTrail()
	for i := 0; i < 3; i++ {
		tr.AddVariable()
	}
	c := &Clause{lits: []Literal{PositiveLiteral(0), PositiveLiteral(1), PositiveLiteral(2)}}

	if c.Satisfied(tr) || c.Falsified(tr) {
		t.Errorf("clause should be neither satisfied nor falsified when unassigned")
	}
	if _, unit := c.Unit(tr); unit {
		t.Errorf("clause with three unassigned literals is not unit")
	}

	tr.Assign(NegativeLiteral(0), nil)
	tr.Assign(NegativeLiteral(1), nil)

	if l, unit := c.Unit(tr); !unit || l != PositiveLiteral(2) {
		t.Errorf("Unit: want (%v, true), got (%v, %v)", PositiveLiteral(2), l, unit)
	}

	tr.Assign(NegativeLiteral(2), nil)

	if !c.Falsified(tr) {
		t.Errorf("clause should be falsified, all literals are false")
	}

	tr2 := NewTrail()
	for i := 0; i < 3; i++ {
		tr2.AddVariable()
	}
	tr2.Assign(PositiveLiteral(1), nil)

	if !c.Satisfied(tr2) {
		t.Errorf("clause should be satisfied by a true literal")
	}
}
