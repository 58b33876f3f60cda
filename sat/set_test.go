package sat

import "testing"

func TestResetSet(t *testing.T) {
	rs := NewResetSet()
	for i := 0; i < 4; i++ {
		rs.Expand()
	}

	if rs.Contains(0) {
		t.Errorf("new set should be empty")
	}

	rs.Add(1)
	rs.Add(3)

	if !rs.Contains(1) || !rs.Contains(3) {
		t.Errorf("added elements should be in the set")
	}
	if rs.Contains(0) || rs.Contains(2) {
		t.Errorf("elements never added should not be in the set")
	}

	rs.Clear()

	for i := 0; i < 4; i++ {
		if rs.Contains(i) {
			t.Errorf("set should be empty after Clear, contains %d", i)
		}
	}
}
