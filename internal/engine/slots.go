package engine

import (
	"github.com/ferrovm/ferrovm/internal/value"
	"github.com/ferrovm/ferrovm/internal/vmerrors"
)

// slot reads f.slots[id], failing with VariableDoesNotExist if id falls
// outside the function's declared local count.
func slot(f *frame, id uint16) (value.Value, *vmerrors.Error) {
	if int(id) >= len(f.slots) {
		return value.Value{}, vmerrors.NewVariableDoesNotExist(id)
	}
	return f.slots[id], nil
}

// setSlot overwrites f.slots[id] with v, after checking v's type matches
// the slot's declared type. The value is cloned so the slot never
// aliases the source.
func setSlot(f *frame, id uint16, v value.Value) *vmerrors.Error {
	if int(id) >= len(f.slots) {
		return vmerrors.NewVariableDoesNotExist(id)
	}
	expected := f.slots[id].TypeOf()
	if !v.TypeOf().Equal(expected) {
		return vmerrors.NewAttemptAssignedDifferentTypes(expected, v.TypeOf())
	}
	f.slots[id] = v.Clone()
	return nil
}

// arrayAt reads slots[id] and confirms it holds an Array, returning the
// underlying TypedArray for mutation.
func arrayAt(f *frame, id uint16) (*value.TypedArray, *vmerrors.Error) {
	v, err := slot(f, id)
	if err != nil {
		return nil, err
	}
	if !v.IsArray() {
		return nil, vmerrors.NewArrayOperationOnNonArrayValue(v.TypeOf())
	}
	return v.AsArray(), nil
}

// indexOf resolves a slot holding an array index, converting it through
// to_index semantics.
func indexOf(f *frame, id uint16) (uint64, *vmerrors.Error) {
	v, err := slot(f, id)
	if err != nil {
		return 0, err
	}
	idx, ok := v.ToIndex()
	if !ok {
		return 0, vmerrors.NewValueIsNotNumeric(v)
	}
	return idx, nil
}
