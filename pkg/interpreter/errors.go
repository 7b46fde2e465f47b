package interpreter

import (
	"fmt"

	"github.com/pakhi-lang/pakhi/pkg/token"
)

// Category tags a RuntimeError with the kind of failure it is, so
// cmd/pakhi can classify failures without string matching.
type Category int

const (
	NameError Category = iota
	TypeError
	ArityError
	IndexError
	KeyError
	ArithmeticError
	UserError
	BreakOutsideLoop
	ReturnOutsideFunction
)

func (c Category) String() string {
	switch c {
	case NameError:
		return "NameError"
	case TypeError:
		return "TypeError"
	case ArityError:
		return "ArityError"
	case IndexError:
		return "IndexError"
	case KeyError:
		return "KeyError"
	case ArithmeticError:
		return "ArithmeticError"
	case UserError:
		return "UserError"
	case BreakOutsideLoop:
		return "BreakOutsideLoop"
	case ReturnOutsideFunction:
		return "ReturnOutsideFunction"
	default:
		return "RuntimeError"
	}
}

// RuntimeError is every evaluation-time failure that is not a lex,
// parse, or resolve error.
type RuntimeError struct {
	Category Category
	Message  string
	Pos      token.Position
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Pos, e.Category, e.Message)
}

func newError(cat Category, pos token.Position, format string, args ...interface{}) *RuntimeError {
	return &RuntimeError{Category: cat, Message: fmt.Sprintf(format, args...), Pos: pos}
}
