// Package ops implements the VM's arithmetic and comparison operators.
// Every operator here is total over its guarded domain: the engine
// passes operands straight from the slots without checking them, so the
// functions in this package check the invariants themselves — same-type,
// numeric, divisor nonzero — and return a *vmerrors.Error on violation.
package ops

import (
	"github.com/ferrovm/ferrovm/internal/program"
	"github.com/ferrovm/ferrovm/internal/value"
	"github.com/ferrovm/ferrovm/internal/vmerrors"
)

// sameNumericType validates that lhs and rhs are both numeric and share
// exactly the same VariableType, returning the shared Kind, which wrap
// uses to truncate the result to that width.
func sameNumericType(lhs, rhs value.Value) (value.Kind, *vmerrors.Error) {
	if !lhs.IsNumber() {
		return 0, vmerrors.NewOperandNotNumeric()
	}
	if !rhs.IsNumber() {
		return 0, vmerrors.NewOperandNotNumeric()
	}
	if !lhs.TypeOf().Equal(rhs.TypeOf()) {
		return 0, vmerrors.NewOperandsNotSameType()
	}
	return lhs.Kind(), nil
}

// wrap truncates a uint64 accumulator back to the width implied by kind,
// giving the unsigned wraparound semantics required of Add/Sub/Rem.
func wrap(kind value.Kind, n uint64) value.Value {
	switch kind {
	case value.KindU8:
		return value.U8(uint8(n))
	case value.KindU16:
		return value.U16(uint16(n))
	case value.KindU32:
		return value.U32(uint32(n))
	default:
		return value.U64(n)
	}
}

// Add computes lhs + rhs, wrapping on overflow.
func Add(lhs, rhs value.Value) (value.Value, *vmerrors.Error) {
	kind, err := sameNumericType(lhs, rhs)
	if err != nil {
		return value.Value{}, err
	}
	return wrap(kind, lhs.AsUint()+rhs.AsUint()), nil
}

// Sub computes lhs - rhs, wrapping on underflow.
func Sub(lhs, rhs value.Value) (value.Value, *vmerrors.Error) {
	kind, err := sameNumericType(lhs, rhs)
	if err != nil {
		return value.Value{}, err
	}
	return wrap(kind, lhs.AsUint()-rhs.AsUint()), nil
}

// Rem computes lhs % rhs. A zero divisor is a deterministic
// OperatorDivideByZero rather than a Go runtime panic.
func Rem(lhs, rhs value.Value) (value.Value, *vmerrors.Error) {
	kind, err := sameNumericType(lhs, rhs)
	if err != nil {
		return value.Value{}, err
	}
	if rhs.AsUint() == 0 {
		return value.Value{}, vmerrors.NewOperatorDivideByZero()
	}
	return wrap(kind, lhs.AsUint()%rhs.AsUint()), nil
}

// LessThan computes lhs < rhs as a Bool. Operands must be numeric and of
// the same type.
func LessThan(lhs, rhs value.Value) (value.Value, *vmerrors.Error) {
	_, err := sameNumericType(lhs, rhs)
	if err != nil {
		return value.Value{}, err
	}
	return value.Bool(lhs.AsUint() < rhs.AsUint()), nil
}

// equatable reports whether kind is one of the types Equals/NotEquals is
// actually defined over: the numeric kinds and Bool. String and Array
// are reserved, matching Mul/Div and friends.
func equatable(k value.Kind) bool {
	switch k {
	case value.KindU8, value.KindU16, value.KindU32, value.KindU64, value.KindBool:
		return true
	default:
		return false
	}
}

// Equals computes lhs == rhs as a Bool, for numeric and Bool operands
// only. op is the opcode named in the NotImplemented error raised for a
// String/Array comparison. The engine passes the var/var opcode (OpEquals
// or OpNotEquals) for the immediate forms as well, so such an error from
// EqualsI names Equals.
func Equals(lhs, rhs value.Value, op program.OpCode) (value.Value, *vmerrors.Error) {
	if !lhs.TypeOf().Equal(rhs.TypeOf()) {
		return value.Value{}, vmerrors.NewOperandsNotSameType()
	}
	if !equatable(lhs.Kind()) {
		return value.Value{}, vmerrors.NewNotImplemented(op)
	}
	return value.Bool(lhs.Equal(rhs)), nil
}

// NotEquals computes lhs != rhs as a Bool, under the same type
// restriction as Equals.
func NotEquals(lhs, rhs value.Value, op program.OpCode) (value.Value, *vmerrors.Error) {
	eq, err := Equals(lhs, rhs, op)
	if err != nil {
		return value.Value{}, err
	}
	return value.Bool(!eq.AsBool()), nil
}
