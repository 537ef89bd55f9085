package value

import (
	"strconv"
	"strings"
)

// TypedArray is a homogeneous, packed sequence of values of a single
// declared element type. Storage is kept in one slice per primitive kind
// (plus a recursive slice of TypedArray for Array(Array(...))) rather than
// a slice of boxed Values, so pushing a million U8s doesn't allocate a
// million Value headers.
//
// Exactly one of the slice fields is ever populated, selected by Elem.Kind.
type TypedArray struct {
	Elem VariableType

	bools   []bool
	u8s     []uint8
	u16s    []uint16
	u32s    []uint32
	u64s    []uint64
	strings []string
	arrays  []TypedArray
}

// NewTypedArray returns an empty array with the given element type.
func NewTypedArray(elem VariableType) *TypedArray {
	return &TypedArray{Elem: elem}
}

// Length returns the number of elements currently stored.
func (a *TypedArray) Length() int {
	switch a.Elem.Kind {
	case KindBool:
		return len(a.bools)
	case KindU8:
		return len(a.u8s)
	case KindU16:
		return len(a.u16s)
	case KindU32:
		return len(a.u32s)
	case KindU64:
		return len(a.u64s)
	case KindString:
		return len(a.strings)
	case KindArray:
		return len(a.arrays)
	default:
		return 0
	}
}

// elementMatches reports whether v's type matches this array's element type.
func (a *TypedArray) elementMatches(v Value) bool {
	return v.TypeOf().Equal(a.Elem)
}

// Get returns a freshly cloned copy of the element at i. ok is false when i
// is out of bounds.
func (a *TypedArray) Get(i uint64) (v Value, ok bool) {
	if i >= uint64(a.Length()) {
		return Value{}, false
	}
	idx := int(i)
	switch a.Elem.Kind {
	case KindBool:
		return Bool(a.bools[idx]), true
	case KindU8:
		return U8(a.u8s[idx]), true
	case KindU16:
		return U16(a.u16s[idx]), true
	case KindU32:
		return U32(a.u32s[idx]), true
	case KindU64:
		return U64(a.u64s[idx]), true
	case KindString:
		return String(a.strings[idx]), true
	case KindArray:
		elem := a.arrays[idx]
		return Array(elem.Clone()), true
	default:
		return Value{}, false
	}
}

// Set overwrites the element at i with v. boundsOK reports whether i was
// in range, checked before the type; typeOK reports whether v's type
// matched the declared element type. Both must be true for the write to
// take effect.
func (a *TypedArray) Set(i uint64, v Value) (typeOK, boundsOK bool) {
	if i >= uint64(a.Length()) {
		return a.elementMatches(v), false
	}
	if !a.elementMatches(v) {
		return false, true
	}
	idx := int(i)
	switch a.Elem.Kind {
	case KindBool:
		a.bools[idx] = v.AsBool()
	case KindU8:
		a.u8s[idx] = uint8(v.AsUint())
	case KindU16:
		a.u16s[idx] = uint16(v.AsUint())
	case KindU32:
		a.u32s[idx] = uint32(v.AsUint())
	case KindU64:
		a.u64s[idx] = v.AsUint()
	case KindString:
		a.strings[idx] = v.AsString()
	case KindArray:
		a.arrays[idx] = *v.AsArray().Clone()
	}
	return true, true
}

// Push appends v if its type matches the declared element type.
func (a *TypedArray) Push(v Value) (typeOK bool) {
	if !a.elementMatches(v) {
		return false
	}
	switch a.Elem.Kind {
	case KindBool:
		a.bools = append(a.bools, v.AsBool())
	case KindU8:
		a.u8s = append(a.u8s, uint8(v.AsUint()))
	case KindU16:
		a.u16s = append(a.u16s, uint16(v.AsUint()))
	case KindU32:
		a.u32s = append(a.u32s, uint32(v.AsUint()))
	case KindU64:
		a.u64s = append(a.u64s, v.AsUint())
	case KindString:
		a.strings = append(a.strings, v.AsString())
	case KindArray:
		a.arrays = append(a.arrays, *v.AsArray().Clone())
	}
	return true
}

// Clone deep-copies the array so the result shares no backing storage with
// the receiver.
func (a *TypedArray) Clone() *TypedArray {
	out := &TypedArray{Elem: a.Elem}
	out.bools = append(out.bools, a.bools...)
	out.u8s = append(out.u8s, a.u8s...)
	out.u16s = append(out.u16s, a.u16s...)
	out.u32s = append(out.u32s, a.u32s...)
	out.u64s = append(out.u64s, a.u64s...)
	out.strings = append(out.strings, a.strings...)
	if len(a.arrays) > 0 {
		out.arrays = make([]TypedArray, len(a.arrays))
		for i := range a.arrays {
			out.arrays[i] = *a.arrays[i].Clone()
		}
	}
	return out
}

// String renders a debug form, e.g. "[U64(2), U64(3), U64(5)]".
func (a *TypedArray) String() string {
	var b strings.Builder
	b.WriteByte('[')
	n := a.Length()
	for i := 0; i < n; i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		v, _ := a.Get(uint64(i))
		b.WriteString(v.String())
	}
	b.WriteByte(']')
	return b.String()
}

// GoString implements fmt.GoStringer so %#v renders an array type and
// length compactly instead of dumping its per-kind slice fields.
func (a *TypedArray) GoString() string {
	return "Array(" + a.Elem.String() + ")[" + strconv.Itoa(a.Length()) + "]"
}
