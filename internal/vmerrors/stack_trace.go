package vmerrors

import (
	"fmt"
	"strings"

	"github.com/ferrovm/ferrovm/internal/program"
)

// StackFrame captures one call-stack entry at the point an error was
// raised: which function was executing and where its instruction counter
// had reached.
type StackFrame struct {
	FunctionID program.FunctionID
	IC         int
}

// String formats a frame as "func 2 [ic: 7]".
func (sf StackFrame) String() string {
	return fmt.Sprintf("func %d [ic: %d]", sf.FunctionID, sf.IC)
}

// StackTrace is a complete call stack, ordered oldest (bottom) to newest
// (top), matching the engine's own call-stack ordering.
type StackTrace []StackFrame

// String renders the trace innermost-first, the way a debugger prints it.
func (st StackTrace) String() string {
	if len(st) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("call stack:")
	for i := len(st) - 1; i >= 0; i-- {
		b.WriteString("\n  at ")
		b.WriteString(st[i].String())
	}
	return b.String()
}

// Top returns the innermost frame, or nil if the trace is empty.
func (st StackTrace) Top() *StackFrame {
	if len(st) == 0 {
		return nil
	}
	return &st[len(st)-1]
}
