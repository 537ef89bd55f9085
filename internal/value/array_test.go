package value

import "testing"

func TestTypedArrayPushAndGet(t *testing.T) {
	arr := NewTypedArray(U64Type())
	if ok := arr.Push(U64(2)); !ok {
		t.Fatalf("Push(U64(2)) failed")
	}
	if ok := arr.Push(Bool(true)); ok {
		t.Fatalf("Push(Bool(true)) onto Array(U64) should fail")
	}
	if got := arr.Length(); got != 1 {
		t.Fatalf("Length() = %d, want 1", got)
	}

	v, ok := arr.Get(0)
	if !ok || v.AsUint() != 2 {
		t.Fatalf("Get(0) = (%v, %v), want (U64(2), true)", v, ok)
	}
	if _, ok := arr.Get(1); ok {
		t.Fatalf("Get(1) should be out of bounds")
	}
}

func TestTypedArraySet(t *testing.T) {
	arr := NewTypedArray(U64Type())
	arr.Push(U64(1))

	typeOK, boundsOK := arr.Set(0, U64(99))
	if !typeOK || !boundsOK {
		t.Fatalf("Set(0, U64(99)) = (%v, %v), want (true, true)", typeOK, boundsOK)
	}
	v, _ := arr.Get(0)
	if v.AsUint() != 99 {
		t.Fatalf("Set did not take effect: Get(0) = %v", v)
	}

	typeOK, boundsOK = arr.Set(0, Bool(true))
	if typeOK {
		t.Fatalf("Set(0, Bool(true)) typeOK = true, want false")
	}
	_ = boundsOK

	typeOK, boundsOK = arr.Set(5, U64(1))
	if !typeOK || boundsOK {
		t.Fatalf("Set(5, U64(1)) = (%v, %v), want (true, false)", typeOK, boundsOK)
	}
}

func TestTypedArrayGetReturnsClonedElement(t *testing.T) {
	inner := NewTypedArray(U8Type())
	inner.Push(U8(7))
	outer := NewTypedArray(ArrayType(U8Type()))
	outer.Push(Array(inner))

	got, ok := outer.Get(0)
	if !ok {
		t.Fatalf("Get(0) failed")
	}
	got.AsArray().Push(U8(9))

	reGot, _ := outer.Get(0)
	if reGot.AsArray().Length() != 1 {
		t.Fatalf("Get returned an aliased element: mutating it changed the array")
	}
}

func TestTypedArrayClone(t *testing.T) {
	arr := NewTypedArray(U64Type())
	arr.Push(U64(1))
	arr.Push(U64(2))

	clone := arr.Clone()
	clone.Push(U64(3))

	if arr.Length() != 2 {
		t.Fatalf("original mutated by clone: length = %d, want 2", arr.Length())
	}
	if clone.Length() != 3 {
		t.Fatalf("clone.Length() = %d, want 3", clone.Length())
	}
}

func TestTypedArrayString(t *testing.T) {
	arr := NewTypedArray(U64Type())
	arr.Push(U64(2))
	arr.Push(U64(3))
	arr.Push(U64(5))

	want := "[U64(2), U64(3), U64(5)]"
	if got := arr.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
