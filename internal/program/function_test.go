package program

import (
	"testing"

	"github.com/ferrovm/ferrovm/internal/value"
)

func TestNewRegistersParametersAsLeadingLocals(t *testing.T) {
	ret := value.U64Type()
	fn := New([]value.VariableType{value.U64Type(), value.BoolType()}, &ret)

	if len(fn.Locals) != 2 {
		t.Fatalf("len(Locals) = %d, want 2", len(fn.Locals))
	}
	if !fn.Locals[0].Equal(value.U64Type()) || !fn.Locals[1].Equal(value.BoolType()) {
		t.Fatalf("Locals = %v, want [U64, Bool]", fn.Locals)
	}
}

func TestRegisterVariableAssignsDenseIDs(t *testing.T) {
	fn := New(nil, nil)
	id0 := fn.RegisterVariable(value.U64Type())
	id1 := fn.RegisterVariable(value.BoolType())
	if id0 != 0 || id1 != 1 {
		t.Fatalf("ids = (%d, %d), want (0, 1)", id0, id1)
	}
}

func TestRegisterVariableContinuesAfterParameters(t *testing.T) {
	ret := value.BoolType()
	fn := New([]value.VariableType{value.U64Type()}, &ret)
	localID := fn.RegisterVariable(value.BoolType())
	if localID != 1 {
		t.Fatalf("localID = %d, want 1 (after one parameter)", localID)
	}
}

func TestIsVoid(t *testing.T) {
	if !New(nil, nil).IsVoid() {
		t.Errorf("New(nil, nil).IsVoid() = false, want true")
	}
	ret := value.U64Type()
	if New(nil, &ret).IsVoid() {
		t.Errorf("New with a return type .IsVoid() = true, want false")
	}
}

func TestProgramEntryAndLookup(t *testing.T) {
	fn0 := New(nil, nil)
	fn1 := New(nil, nil)
	p := NewProgram(map[FunctionID]*Function{0: fn0, 1: fn1})

	entry, ok := p.Entry()
	if !ok || entry != fn0 {
		t.Fatalf("Entry() = (%v, %v), want (fn0, true)", entry, ok)
	}
	if _, ok := p.Function(2); ok {
		t.Errorf("Function(2) ok = true, want false")
	}
}
