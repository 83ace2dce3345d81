package vm

import "testing"

func TestIntegerCloneIsNoOp(t *testing.T) {
	v := Integer(42)
	cp := v.Clone()
	if cp.Kind != IntegerValue || cp.Int != 42 {
		t.Errorf("got %+v", cp)
	}
}

func TestArrayCloneIsDeep(t *testing.T) {
	v := Array([]int64{1, 2, 3})
	cp := v.Clone()
	cp.Array[0] = 99
	if v.Array[0] != 1 {
		t.Error("mutating the clone's backing array leaked into the original")
	}
}
