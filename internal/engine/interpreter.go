// Package engine implements the VM's execution core: the call stack of
// ExecutionFrames, the dispatch loop, parameter marshaling, return-value
// plumbing, goto handling and native-call dispatch described by the
// Value & Type Model, Operations and Function/Program layers beneath it.
package engine

import (
	"fmt"
	"io"
	"os"

	"github.com/ferrovm/ferrovm/internal/ops"
	"github.com/ferrovm/ferrovm/internal/program"
	"github.com/ferrovm/ferrovm/internal/value"
	"github.com/ferrovm/ferrovm/internal/vmerrors"
)

// Native function ids, exposed to programs via CallNativeVoidFunction.
const (
	nativeFuncPrint = 0
)

// Native method ids, exposed to programs via CallNativeVoidMethod and
// CallNativeMethod, dispatched against an array receiver.
const (
	nativeMethodPush   = 0
	nativeMethodLength = 1
)

// Interpreter executes one Program to completion. It is single-use:
// construct one per run via New, then call Execute once.
type Interpreter struct {
	program *program.Program
	output  io.Writer

	stack          []*frame
	returnRegister *value.Value
}

// New binds an interpreter to a program. The entry frame (function 0) is
// not constructed until Execute is called.
func New(p *program.Program) *Interpreter {
	return &Interpreter{program: p, output: os.Stdout}
}

// SetOutput redirects the print native's output, primarily for tests
// that need to capture it instead of writing to the real stdout.
func (in *Interpreter) SetOutput(w io.Writer) {
	in.output = w
}

func initialSlots(fn *program.Function) []value.Value {
	slots := make([]value.Value, len(fn.Locals))
	for i, t := range fn.Locals {
		slots[i] = value.ZeroOf(t)
	}
	return slots
}

// Execute runs the program from its entry point (function id 0) to
// completion, returning the first error raised, if any. The call stack
// drains either by falling through the entry function's last
// instruction or by an unhandled Return from it.
func (in *Interpreter) Execute() error {
	entry, ok := in.program.Function(0)
	if !ok {
		return vmerrors.NewFunctionDoesNotExist(0)
	}
	in.stack = []*frame{newFrame(0, initialSlots(entry))}
	in.returnRegister = nil

	for len(in.stack) > 0 {
		top := in.stack[len(in.stack)-1]

		if top.pendingReturnSlot >= 0 {
			if err := in.consumePendingReturn(top); err != nil {
				return in.fail(err)
			}
		}

		fn, ok := in.program.Function(program.FunctionID(top.functionID))
		if !ok {
			return in.fail(vmerrors.NewFunctionDoesNotExist(program.FunctionID(top.functionID)))
		}
		if top.ic >= len(fn.Instructions) {
			in.stack = in.stack[:len(in.stack)-1]
			continue
		}

		instr := fn.Instructions[top.ic]
		if err := in.step(top, fn, instr); err != nil {
			return in.fail(err)
		}
	}
	return nil
}

// consumePendingReturn implements dispatch step 1: a frame resuming from
// a CallFunction first drains the interpreter's single return register
// into its destination slot.
func (in *Interpreter) consumePendingReturn(f *frame) *vmerrors.Error {
	if in.returnRegister == nil {
		return vmerrors.NewNoReturnValue()
	}
	dst := uint16(f.pendingReturnSlot)
	v := *in.returnRegister
	in.returnRegister = nil
	if err := setSlot(f, dst, v); err != nil {
		return err
	}
	f.pendingReturnSlot = -1
	return nil
}

// fail attaches the current call stack to err as a trace before
// returning it, innermost frame last.
func (in *Interpreter) fail(err *vmerrors.Error) *vmerrors.Error {
	trace := make(vmerrors.StackTrace, len(in.stack))
	for i, f := range in.stack {
		trace[i] = vmerrors.StackFrame{FunctionID: program.FunctionID(f.functionID), IC: f.ic}
	}
	err.Trace = trace
	return err
}

// step executes one instruction against the top frame, advancing its
// instruction counter per the deferred-jump rule: Goto/GotoIfTrue set
// the counter directly; every other instruction falls through to ic+1.
func (in *Interpreter) step(f *frame, fn *program.Function, instr program.Instruction) *vmerrors.Error {
	if instr.Op.IsReserved() {
		return vmerrors.NewNotImplemented(instr.Op)
	}

	nextIC := f.ic + 1

	switch instr.Op {
	case program.OpSet:
		v, err := slot(f, instr.B)
		if err != nil {
			return err
		}
		if err := setSlot(f, instr.A, v); err != nil {
			return err
		}

	case program.OpSetI:
		if err := setSlot(f, instr.A, instr.Imm); err != nil {
			return err
		}

	case program.OpSetArrayIndex:
		arr, err := arrayAt(f, instr.A)
		if err != nil {
			return err
		}
		idx, err := indexOf(f, instr.B)
		if err != nil {
			return err
		}
		v, err := slot(f, instr.C)
		if err != nil {
			return err
		}
		if err := in.writeArrayIndex(arr, idx, v); err != nil {
			return err
		}

	case program.OpSetArrayIndexI:
		arr, err := arrayAt(f, instr.A)
		if err != nil {
			return err
		}
		idx, err := indexOf(f, instr.B)
		if err != nil {
			return err
		}
		if err := in.writeArrayIndex(arr, idx, instr.Imm); err != nil {
			return err
		}

	case program.OpGetArrayIndex:
		arr, err := arrayAt(f, instr.A)
		if err != nil {
			return err
		}
		idx, err := indexOf(f, instr.C)
		if err != nil {
			return err
		}
		v, ok := arr.Get(idx)
		if !ok {
			return vmerrors.NewArrayIndexBeyondBounds(idx)
		}
		if err := setSlot(f, instr.B, v); err != nil {
			return err
		}

	case program.OpAdd, program.OpSub, program.OpRem:
		if err := in.arith(f, instr); err != nil {
			return err
		}

	case program.OpAddI, program.OpSubI, program.OpRemI:
		if err := in.arithImm(f, instr); err != nil {
			return err
		}

	case program.OpLessThan, program.OpEquals, program.OpNotEquals:
		if err := in.cmp(f, instr); err != nil {
			return err
		}

	case program.OpLessThanI, program.OpEqualsI, program.OpNotEqualsI:
		if err := in.cmpImm(f, instr); err != nil {
			return err
		}

	case program.OpGoto:
		nextIC = instr.Target

	case program.OpGotoIfTrue:
		cond, err := slot(f, instr.A)
		if err != nil {
			return err
		}
		if !cond.IsBool() {
			return vmerrors.NewGotoNonBoolean()
		}
		if cond.AsBool() {
			nextIC = instr.Target
		}

	case program.OpPushFunctionParameter:
		v, err := slot(f, instr.A)
		if err != nil {
			return err
		}
		f.pushParam(v)

	case program.OpCallFunction:
		if err := in.callFunction(f, instr, true); err != nil {
			return err
		}
		return nil // ic already advanced by callFunction before pushing the callee

	case program.OpCallVoidFunction:
		if err := in.callFunction(f, instr, false); err != nil {
			return err
		}
		return nil

	case program.OpCallNativeVoidFunction:
		if err := in.callNativeVoidFunction(f, instr); err != nil {
			return err
		}

	case program.OpCallNativeVoidMethod:
		if err := in.callNativeVoidMethod(f, instr); err != nil {
			return err
		}

	case program.OpCallNativeMethod:
		if err := in.callNativeMethod(f, instr); err != nil {
			return err
		}

	case program.OpReturn:
		v, err := slot(f, instr.A)
		if err != nil {
			return err
		}
		cloned := v.Clone()
		in.returnRegister = &cloned
		in.stack = in.stack[:len(in.stack)-1]
		return nil

	default:
		return vmerrors.NewNotImplemented(instr.Op)
	}

	f.ic = nextIC
	return nil
}

func (in *Interpreter) writeArrayIndex(arr *value.TypedArray, idx uint64, v value.Value) *vmerrors.Error {
	typeOK, boundsOK := arr.Set(idx, v)
	if !boundsOK {
		return vmerrors.NewArrayIndexBeyondBounds(idx)
	}
	if !typeOK {
		return vmerrors.NewArraySetValueWithIncompatibleType(value.ArrayType(arr.Elem), v.TypeOf())
	}
	return nil
}

func (in *Interpreter) arith(f *frame, instr program.Instruction) *vmerrors.Error {
	lhs, err := slot(f, instr.A)
	if err != nil {
		return err
	}
	rhs, err := slot(f, instr.B)
	if err != nil {
		return err
	}
	result, opErr := dispatchArith(instr.Op, lhs, rhs)
	if opErr != nil {
		return opErr
	}
	return setSlot(f, instr.A, result)
}

func (in *Interpreter) arithImm(f *frame, instr program.Instruction) *vmerrors.Error {
	lhs, err := slot(f, instr.A)
	if err != nil {
		return err
	}
	result, opErr := dispatchArith(baseOp(instr.Op), lhs, instr.Imm)
	if opErr != nil {
		return opErr
	}
	return setSlot(f, instr.A, result)
}

func dispatchArith(op program.OpCode, lhs, rhs value.Value) (value.Value, *vmerrors.Error) {
	switch op {
	case program.OpAdd:
		return ops.Add(lhs, rhs)
	case program.OpSub:
		return ops.Sub(lhs, rhs)
	case program.OpRem:
		return ops.Rem(lhs, rhs)
	default:
		return value.Value{}, vmerrors.NewNotImplemented(op)
	}
}

func (in *Interpreter) cmp(f *frame, instr program.Instruction) *vmerrors.Error {
	lhs, err := slot(f, instr.B)
	if err != nil {
		return err
	}
	rhs, err := slot(f, instr.C)
	if err != nil {
		return err
	}
	result, opErr := dispatchCmp(instr.Op, lhs, rhs)
	if opErr != nil {
		return opErr
	}
	return setSlot(f, instr.A, result)
}

func (in *Interpreter) cmpImm(f *frame, instr program.Instruction) *vmerrors.Error {
	lhs, err := slot(f, instr.B)
	if err != nil {
		return err
	}
	result, opErr := dispatchCmp(baseOp(instr.Op), lhs, instr.Imm)
	if opErr != nil {
		return opErr
	}
	return setSlot(f, instr.A, result)
}

func dispatchCmp(op program.OpCode, lhs, rhs value.Value) (value.Value, *vmerrors.Error) {
	switch op {
	case program.OpLessThan:
		return ops.LessThan(lhs, rhs)
	case program.OpEquals:
		return ops.Equals(lhs, rhs, op)
	case program.OpNotEquals:
		return ops.NotEquals(lhs, rhs, op)
	default:
		return value.Value{}, vmerrors.NewNotImplemented(op)
	}
}

// baseOp maps an *I opcode to the var/var opcode ops dispatches on; both
// share identical semantics and differ only in where the second operand
// comes from.
func baseOp(op program.OpCode) program.OpCode {
	switch op {
	case program.OpAddI:
		return program.OpAdd
	case program.OpSubI:
		return program.OpSub
	case program.OpRemI:
		return program.OpRem
	case program.OpLessThanI:
		return program.OpLessThan
	case program.OpEqualsI:
		return program.OpEquals
	case program.OpNotEqualsI:
		return program.OpNotEquals
	default:
		return op
	}
}

// callFunction implements CallFunction/CallVoidFunction: it validates
// the callee's void-ness against wantsReturn, advances the caller, binds
// parameters in reverse order, and pushes the new frame.
func (in *Interpreter) callFunction(caller *frame, instr program.Instruction, wantsReturn bool) *vmerrors.Error {
	fid := instr.B
	callee, ok := in.program.Function(fid)
	if !ok {
		return vmerrors.NewFunctionDoesNotExist(fid)
	}
	if wantsReturn && callee.IsVoid() {
		return vmerrors.NewExpectingReturnCallToVoidFunction(fid)
	}
	if !wantsReturn && !callee.IsVoid() {
		return vmerrors.NewVoidCallToNonVoidFunction(fid)
	}

	caller.ic++
	if wantsReturn {
		caller.pendingReturnSlot = int(instr.A)
	}

	calleeSlots := initialSlots(callee)
	for i := len(callee.Parameters) - 1; i >= 0; i-- {
		arg, ok := caller.popParam()
		if !ok {
			return vmerrors.NewFunctionCallParameterStackEmptyPop(fid)
		}
		if !arg.TypeOf().Equal(callee.Parameters[i]) {
			return vmerrors.NewFunctionCallParametersInvalid(fid, false)
		}
		calleeSlots[i] = arg.Clone()
	}

	in.stack = append(in.stack, newFrame(int(fid), calleeSlots))
	return nil
}

// callNativeVoidFunction implements the only bound entry in the native
// function namespace: id 0, print.
func (in *Interpreter) callNativeVoidFunction(f *frame, instr program.Instruction) *vmerrors.Error {
	nid := instr.B
	if nid != nativeFuncPrint {
		return vmerrors.NewFunctionCallParametersInvalid(nid, true)
	}
	arg, ok := f.popParam()
	if !ok {
		return vmerrors.NewFunctionCallParametersInvalid(nid, true)
	}
	if len(f.paramQueue) != 0 {
		return vmerrors.NewFunctionCallParametersInvalid(nid, true)
	}
	fmt.Fprintln(in.output, arg.String())
	return nil
}

// callNativeVoidMethod implements the array push native method (id 0).
func (in *Interpreter) callNativeVoidMethod(f *frame, instr program.Instruction) *vmerrors.Error {
	mid := instr.B
	if mid != nativeMethodPush {
		return vmerrors.NewFunctionCallParametersInvalid(mid, true)
	}
	arr, err := arrayAt(f, instr.A)
	if err != nil {
		return err
	}
	arg, ok := f.popParam()
	if !ok {
		return vmerrors.NewFunctionCallParametersInvalid(mid, true)
	}
	if !arr.Push(arg) {
		return vmerrors.NewArrayTypeIncompatibleWithPushValue(value.ArrayType(arr.Elem), arg.TypeOf())
	}
	return nil
}

// callNativeMethod implements the array length native method (id 1).
func (in *Interpreter) callNativeMethod(f *frame, instr program.Instruction) *vmerrors.Error {
	mid := instr.C
	if mid != nativeMethodLength {
		return vmerrors.NewFunctionCallParametersInvalid(mid, true)
	}
	arr, err := arrayAt(f, instr.B)
	if err != nil {
		return err
	}
	return setSlot(f, instr.A, value.U64(uint64(arr.Length())))
}
