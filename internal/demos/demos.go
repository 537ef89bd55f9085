// Package demos builds the sample Programs that the ferrovm CLI can
// execute. There is no parser in this system — programs are built
// directly against the program builder API — so this package plays the
// role a script loader would in a language with surface syntax.
package demos

import (
	"fmt"

	"github.com/ferrovm/ferrovm/internal/program"
	"github.com/ferrovm/ferrovm/internal/value"
)

// Names lists the demos in registration order, for CLI help text.
var Names = []string{"echo", "loop", "call", "sieve"}

// Build returns the named demo Program, or an error if name is unknown.
func Build(name string) (*program.Program, error) {
	switch name {
	case "echo":
		return echo(), nil
	case "loop":
		return countedLoop(), nil
	case "call":
		return callWithReturn(), nil
	case "sieve":
		return primeSieve(1000), nil
	default:
		return nil, fmt.Errorf("demos: unknown demo %q (available: %v)", name, Names)
	}
}

// echo sets a U64 local to 32, pushes it, and prints it.
func echo() *program.Program {
	fn := program.New(nil, nil)
	local := fn.RegisterVariable(value.U64Type())
	fn.SetInstructions([]program.Instruction{
		program.SetI(local, value.U64(32)),
		program.PushFunctionParameter(local),
		program.CallNativeVoidFunction(0),
	})
	return program.NewProgram(map[program.FunctionID]*program.Function{0: fn})
}

// countedLoop increments a counter to 10 using GotoIfTrue, then prints
// the final count.
func countedLoop() *program.Program {
	fn := program.New(nil, nil)
	counter := fn.RegisterVariable(value.U64Type())
	cond := fn.RegisterVariable(value.BoolType())
	fn.SetInstructions([]program.Instruction{
		program.AddI(counter, value.U64(1)),
		program.LessThanI(cond, counter, value.U64(10)),
		program.GotoIfTrue(0, cond),
		program.PushFunctionParameter(counter),
		program.CallNativeVoidFunction(0),
	})
	return program.NewProgram(map[program.FunctionID]*program.Function{0: fn})
}

// callWithReturn has main call a second function that returns Bool(true)
// into a local, then prints it.
func callWithReturn() *program.Program {
	boolRet := value.BoolType()
	callee := program.New(nil, &boolRet)
	b := callee.RegisterVariable(value.BoolType())
	callee.SetInstructions([]program.Instruction{
		program.SetI(b, value.Bool(true)),
		program.Return(b),
	})

	main := program.New(nil, nil)
	r := main.RegisterVariable(value.BoolType())
	main.SetInstructions([]program.Instruction{
		program.CallFunction(1, r),
		program.PushFunctionParameter(r),
		program.CallNativeVoidFunction(0),
	})

	return program.NewProgram(map[program.FunctionID]*program.Function{0: main, 1: callee})
}

// primeSieve builds a trial-division sieve: a helper function tests a
// candidate against the primes found so far, and main pushes each prime
// it finds onto the primes array, stepping the candidate by two, until
// the array holds target primes.
func primeSieve(target uint64) *program.Program {
	boolRet := value.BoolType()
	trial := program.New([]value.VariableType{
		value.ArrayType(value.U64Type()),
		value.U64Type(),
		value.U64Type(),
	}, &boolRet)
	primesParam := program.VariableID(0)
	countParam := program.VariableID(1)
	candidateParam := program.VariableID(2)
	i := trial.RegisterVariable(value.U64Type())
	cond := trial.RegisterVariable(value.BoolType())
	d := trial.RegisterVariable(value.U64Type())
	remTmp := trial.RegisterVariable(value.U64Type())
	cond2 := trial.RegisterVariable(value.BoolType())
	result := trial.RegisterVariable(value.BoolType())
	trial.SetInstructions([]program.Instruction{
		program.LessThan(cond, i, countParam),
		program.GotoIfTrue(4, cond),
		program.SetI(result, value.Bool(true)),
		program.Return(result),
		program.GetArrayIndex(primesParam, d, i),
		program.Set(remTmp, candidateParam),
		program.Rem(remTmp, d),
		program.EqualsI(cond2, remTmp, value.U64(0)),
		program.GotoIfTrue(11, cond2),
		program.AddI(i, value.U64(1)),
		program.Goto(0),
		program.SetI(result, value.Bool(false)),
		program.Return(result),
	})

	main := program.New(nil, nil)
	primes := main.RegisterVariable(value.ArrayType(value.U64Type()))
	check := main.RegisterVariable(value.U64Type())
	count := main.RegisterVariable(value.U64Type())
	loopCond := main.RegisterVariable(value.BoolType())
	trialResult := main.RegisterVariable(value.BoolType())
	elemTmp := main.RegisterVariable(value.U64Type())
	main.SetInstructions([]program.Instruction{
		program.SetI(elemTmp, value.U64(2)),
		program.PushFunctionParameter(elemTmp),
		program.CallNativeVoidMethod(primes, 0), // push(2)
		program.SetI(check, value.U64(3)),
		program.SetI(count, value.U64(1)),
		program.LessThanI(loopCond, count, value.U64(target)),
		program.GotoIfTrue(8, loopCond),
		program.Goto(21),
		program.PushFunctionParameter(primes),
		program.PushFunctionParameter(count),
		program.PushFunctionParameter(check),
		program.CallFunction(1, trialResult),
		program.GotoIfTrue(15, trialResult),
		program.AddI(check, value.U64(2)),
		program.Goto(5),
		program.Set(elemTmp, check),
		program.PushFunctionParameter(elemTmp),
		program.CallNativeVoidMethod(primes, 0), // push(check)
		program.AddI(count, value.U64(1)),
		program.AddI(check, value.U64(2)),
		program.Goto(5),
		program.PushFunctionParameter(primes),
		program.CallNativeVoidFunction(0),
	})

	return program.NewProgram(map[program.FunctionID]*program.Function{0: main, 1: trial})
}
