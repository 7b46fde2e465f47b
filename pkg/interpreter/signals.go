package interpreter

import (
	"github.com/pakhi-lang/pakhi/pkg/ast"
	"github.com/pakhi-lang/pakhi/pkg/runtime"
)

// breakSignal and returnSignal are non-local control flow modeled as Go
// errors returned up the evaluator's own call stack rather than as
// panics — each eval* function has exactly one way to signal "stop
// walking this subtree", and the statement loops that catch them are the
// only place that interprets what they mean. Each carries the position
// of the থামাও/ফেরত that raised it, for the error reported if it
// escapes its boundary.
type breakSignal struct {
	pos ast.Position
}

func (breakSignal) Error() string { return "break" }

type returnSignal struct {
	value runtime.Value
	pos   ast.Position
}

func (returnSignal) Error() string { return "return" }
