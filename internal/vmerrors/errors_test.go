package vmerrors

import (
	"strings"
	"testing"

	"github.com/ferrovm/ferrovm/internal/value"
)

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{"VariableDoesNotExist", NewVariableDoesNotExist(3), "variable 3 does not exist"},
		{"FunctionDoesNotExist", NewFunctionDoesNotExist(7), "function 7 does not exist"},
		{
			"AttemptAssignedDifferentTypes",
			NewAttemptAssignedDifferentTypes(value.BoolType(), value.U64Type()),
			"attempt to assign U64 into a slot of type Bool",
		},
		{"OperandsNotSameType", NewOperandsNotSameType(), "operands are not the same type"},
		{"OperandNotNumeric", NewOperandNotNumeric(), "operand is not numeric"},
		{"GotoNonBoolean", NewGotoNonBoolean(), "GotoIfTrue condition is not a Bool"},
		{"OperatorDivideByZero", NewOperatorDivideByZero(), "division by zero"},
		{
			"ArrayIndexBeyondBounds",
			NewArrayIndexBeyondBounds(12),
			"array index 12 is beyond bounds",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestErrorWithTraceAppendsCallStack(t *testing.T) {
	err := NewOperatorDivideByZero()
	err.Trace = StackTrace{{FunctionID: 0, IC: 4}, {FunctionID: 2, IC: 9}}

	got := err.Error()
	if !strings.HasPrefix(got, "division by zero\n") {
		t.Fatalf("Error() = %q, want it to start with the base message", got)
	}
	if !strings.Contains(got, "func 2 [ic: 9]") {
		t.Errorf("Error() = %q, want it to mention the innermost frame", got)
	}
}

func TestFunctionCallParametersInvalidReportsNativeVsUserDistinctly(t *testing.T) {
	native := NewFunctionCallParametersInvalid(0, true)
	if got := native.Error(); got != "native call received parameters of an invalid type" {
		t.Errorf("native Error() = %q", got)
	}

	user := NewFunctionCallParametersInvalid(3, false)
	want := "call to function 3 received parameters of an invalid type"
	if got := user.Error(); got != want {
		t.Errorf("user Error() = %q, want %q", got, want)
	}
}
