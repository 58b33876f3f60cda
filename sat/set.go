package sat

// ResetSet represents a set of integers from 0 to N-1 where N is the
// capacity of the set. Clearing the set is a constant time operation,
// which conflict analysis relies on to reuse the same set across calls.
type ResetSet struct {
	stamps []uint32
	stamp  uint32
}

// NewResetSet returns an empty set with zero capacity.
func NewResetSet() *ResetSet {
	return &ResetSet{stamp: 1}
}

// Contains returns true if v is in the set.
func (rs *ResetSet) Contains(v int) bool {
	return rs.stamps[v] == rs.stamp
}

// Add adds v to the set.
func (rs *ResetSet) Add(v int) {
	rs.stamps[v] = rs.stamp
}

// Clear removes all the elements in the set in constant time.
func (rs *ResetSet) Clear() {
	rs.stamp++
	if rs.stamp == 0 { // overflow
		rs.stamp = 1
		for i := range rs.stamps {
			rs.stamps[i] = 0
		}
	}
}

// Expand increases the capacity of the set by one.
func (rs *ResetSet) Expand() {
	rs.stamps = append(rs.stamps, 0)
}
