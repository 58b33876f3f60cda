package sat

import (
	"github.com/rhartert/yagh"
)

// VarOrder selects the literal to branch on when propagation saturates
// without conflict. Variables are picked by increasing ID with the
// positive polarity first. The policy is fixed and free of randomness so
// that runs on the same formula are reproducible.
type VarOrder struct {
	trail *Trail
	heap  *yagh.IntMap[float64]
}

// NewVarOrder returns a variable ordering over the trail's variables.
func NewVarOrder(t *Trail, nVars int) *VarOrder {
	vo := &VarOrder{
		trail: t,
		heap:  yagh.New[float64](nVars),
	}
	for v := 0; v < nVars; v++ {
		vo.heap.Put(v, float64(v))
	}
	return vo
}

// Reinsert puts a variable back into the ordering. The solver calls it for
// each variable unassigned while rewinding the trail.
func (vo *VarOrder) Reinsert(varID int) {
	if !vo.heap.Contains(varID) {
		vo.heap.Put(varID, float64(varID))
	}
}

// Select returns the decision literal for the lowest-numbered unassigned
// variable. It must not be called when all variables are assigned.
func (vo *VarOrder) Select() Literal {
	for {
		next, ok := vo.heap.Pop()
		if !ok {
			panic("variable ordering is empty")
		}
		if vo.trail.VarValue(next.Elem) != Unknown {
			continue // already assigned
		}
		return PositiveLiteral(next.Elem)
	}
}
