package program

import "github.com/ferrovm/ferrovm/internal/value"

// FunctionID identifies a function within a Program. Id 0 is the entry
// point by convention.
type FunctionID = uint16

// VariableID identifies a local variable (including parameters) within a
// single Function. Ids are dense and assigned in registration order
// starting at 0.
type VariableID = uint16

// Function is a typed signature plus a declared local-variable schema and
// an instruction vector. Parameters are the first len(Parameters) locals,
// so a call site binds arguments with a straight copy into slots
// 0..len(parameters).
type Function struct {
	Parameters   []value.VariableType
	ReturnType   *value.VariableType
	Locals       []value.VariableType
	Instructions []Instruction
}

// New creates a Function with the given parameter types and optional
// return type (nil means void). Parameters are registered as the first
// locals, matching RegisterVariable's id assignment.
func New(params []value.VariableType, returnType *value.VariableType) *Function {
	locals := make([]value.VariableType, len(params))
	copy(locals, params)
	return &Function{
		Parameters: append([]value.VariableType(nil), params...),
		ReturnType: returnType,
		Locals:     locals,
	}
}

// RegisterVariable declares a new local of the given type and returns its
// id. Ids are assigned in registration order starting at 0; New has
// already reserved ids 0..len(Parameters)-1 for the parameters, so the
// first call returns len(Parameters).
func (f *Function) RegisterVariable(t value.VariableType) VariableID {
	f.Locals = append(f.Locals, t)
	return VariableID(len(f.Locals) - 1)
}

// RegisterVariables declares several locals at once and returns their ids
// in order.
func (f *Function) RegisterVariables(types []value.VariableType) []VariableID {
	ids := make([]VariableID, len(types))
	for i, t := range types {
		ids[i] = f.RegisterVariable(t)
	}
	return ids
}

// SetInstructions installs the function body.
func (f *Function) SetInstructions(instructions []Instruction) {
	f.Instructions = instructions
}

// IsVoid reports whether the function has no return type.
func (f *Function) IsVoid() bool { return f.ReturnType == nil }

// Program is an identifier-keyed mapping of functions with one designated
// entry point: function id 0.
type Program struct {
	Functions map[FunctionID]*Function
}

// NewProgram builds a Program from the complete function map. The caller is
// responsible for assigning function ids and for ensuring id 0 exists.
func NewProgram(functions map[FunctionID]*Function) *Program {
	return &Program{Functions: functions}
}

// Function looks up a function by id.
func (p *Program) Function(id FunctionID) (*Function, bool) {
	fn, ok := p.Functions[id]
	return fn, ok
}

// Entry returns the designated entry point, function id 0.
func (p *Program) Entry() (*Function, bool) {
	return p.Function(0)
}
