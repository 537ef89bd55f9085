// Package vmerrors enumerates the engine's failure taxonomy. Every error
// the VM can raise is one of the Kinds below; execution aborts on the
// first one and performs no local recovery. Prior side effects (array
// mutations, prints already emitted) are not rolled back.
package vmerrors

import (
	"fmt"

	"github.com/ferrovm/ferrovm/internal/program"
	"github.com/ferrovm/ferrovm/internal/value"
)

// Kind identifies one taxon of the error enumeration in spec §7.
type Kind int

const (
	// Referencing
	VariableDoesNotExist Kind = iota
	FunctionDoesNotExist

	// Type
	AttemptAssignedDifferentTypes
	OperandsNotSameType
	OperandNotNumeric
	ValueIsNotNumeric
	GotoNonBoolean

	// Call discipline
	ExpectingReturnCallToVoidFunction
	VoidCallToNonVoidFunction
	FunctionCallParameterStackEmptyPop
	FunctionCallParametersInvalid
	NoReturnValue

	// Array
	ArrayOperationOnNonArrayValue
	ArrayIndexBeyondBounds
	ArraySetValueWithIncompatibleType
	ArrayTypeIncompatibleWithPushValue

	// Arithmetic
	OperatorDivideByZero

	// Reserved
	NotImplemented
)

// Error is the concrete error type returned by Execute. Which fields are
// populated depends on Kind; see the Kind-specific constructors below.
type Error struct {
	Kind Kind

	VariableID program.VariableID
	FunctionID program.FunctionID
	Expected   value.VariableType
	Actual     value.VariableType
	Value      value.Value
	Index      uint64
	IsNative   bool
	Opcode     program.OpCode

	// Trace is the call stack at the point of failure, innermost frame
	// last. It may be empty for errors raised before any frame was pushed.
	Trace StackTrace
}

func (e *Error) Error() string {
	msg := e.message()
	if len(e.Trace) == 0 {
		return msg
	}
	return fmt.Sprintf("%s\n%s", msg, e.Trace.String())
}

func (e *Error) message() string {
	switch e.Kind {
	case VariableDoesNotExist:
		return fmt.Sprintf("variable %d does not exist", e.VariableID)
	case FunctionDoesNotExist:
		return fmt.Sprintf("function %d does not exist", e.FunctionID)
	case AttemptAssignedDifferentTypes:
		return fmt.Sprintf("attempt to assign %s into a slot of type %s", e.Actual, e.Expected)
	case OperandsNotSameType:
		return "operands are not the same type"
	case OperandNotNumeric:
		return "operand is not numeric"
	case ValueIsNotNumeric:
		return fmt.Sprintf("value %s is not numeric", e.Value)
	case GotoNonBoolean:
		return "GotoIfTrue condition is not a Bool"
	case ExpectingReturnCallToVoidFunction:
		return fmt.Sprintf("CallFunction expects a return value but function %d is void", e.FunctionID)
	case VoidCallToNonVoidFunction:
		return fmt.Sprintf("CallVoidFunction called on non-void function %d", e.FunctionID)
	case FunctionCallParameterStackEmptyPop:
		return fmt.Sprintf("parameter queue empty while binding a call to function %d", e.FunctionID)
	case FunctionCallParametersInvalid:
		if e.IsNative {
			return "native call received parameters of an invalid type"
		}
		return fmt.Sprintf("call to function %d received parameters of an invalid type", e.FunctionID)
	case NoReturnValue:
		return "no return value is pending for the resumed caller"
	case ArrayOperationOnNonArrayValue:
		return fmt.Sprintf("array operation attempted on non-array value of type %s", e.Actual)
	case ArrayIndexBeyondBounds:
		return fmt.Sprintf("array index %d is beyond bounds", e.Index)
	case ArraySetValueWithIncompatibleType:
		return fmt.Sprintf("cannot set element of %s array with value of type %s", e.Expected, e.Actual)
	case ArrayTypeIncompatibleWithPushValue:
		return fmt.Sprintf("cannot push value of type %s onto %s array", e.Actual, e.Expected)
	case OperatorDivideByZero:
		return "division by zero"
	case NotImplemented:
		return fmt.Sprintf("opcode %s is reserved and not implemented", e.Opcode)
	default:
		return "unknown VM error"
	}
}

func NewVariableDoesNotExist(id program.VariableID) *Error {
	return &Error{Kind: VariableDoesNotExist, VariableID: id}
}

func NewFunctionDoesNotExist(id program.FunctionID) *Error {
	return &Error{Kind: FunctionDoesNotExist, FunctionID: id}
}

func NewAttemptAssignedDifferentTypes(expected, actual value.VariableType) *Error {
	return &Error{Kind: AttemptAssignedDifferentTypes, Expected: expected, Actual: actual}
}

func NewOperandsNotSameType() *Error { return &Error{Kind: OperandsNotSameType} }

func NewOperandNotNumeric() *Error { return &Error{Kind: OperandNotNumeric} }

func NewValueIsNotNumeric(v value.Value) *Error {
	return &Error{Kind: ValueIsNotNumeric, Value: v}
}

func NewGotoNonBoolean() *Error { return &Error{Kind: GotoNonBoolean} }

func NewExpectingReturnCallToVoidFunction(fid program.FunctionID) *Error {
	return &Error{Kind: ExpectingReturnCallToVoidFunction, FunctionID: fid}
}

func NewVoidCallToNonVoidFunction(fid program.FunctionID) *Error {
	return &Error{Kind: VoidCallToNonVoidFunction, FunctionID: fid}
}

func NewFunctionCallParameterStackEmptyPop(fid program.FunctionID) *Error {
	return &Error{Kind: FunctionCallParameterStackEmptyPop, FunctionID: fid}
}

func NewFunctionCallParametersInvalid(fid program.FunctionID, isNative bool) *Error {
	return &Error{Kind: FunctionCallParametersInvalid, FunctionID: fid, IsNative: isNative}
}

func NewNoReturnValue() *Error { return &Error{Kind: NoReturnValue} }

func NewArrayOperationOnNonArrayValue(actual value.VariableType) *Error {
	return &Error{Kind: ArrayOperationOnNonArrayValue, Actual: actual}
}

func NewArrayIndexBeyondBounds(i uint64) *Error {
	return &Error{Kind: ArrayIndexBeyondBounds, Index: i}
}

func NewArraySetValueWithIncompatibleType(arrayType, valueType value.VariableType) *Error {
	return &Error{Kind: ArraySetValueWithIncompatibleType, Expected: arrayType, Actual: valueType}
}

func NewArrayTypeIncompatibleWithPushValue(arrayType, valueType value.VariableType) *Error {
	return &Error{Kind: ArrayTypeIncompatibleWithPushValue, Expected: arrayType, Actual: valueType}
}

func NewOperatorDivideByZero() *Error { return &Error{Kind: OperatorDivideByZero} }

func NewNotImplemented(op program.OpCode) *Error {
	return &Error{Kind: NotImplemented, Opcode: op}
}
