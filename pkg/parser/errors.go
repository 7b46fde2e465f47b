package parser

import (
	"fmt"

	"github.com/pakhi-lang/pakhi/pkg/token"
)

// Error reports a syntax error, naming what was expected against what was
// actually found.
type Error struct {
	Pos      token.Position
	Expected string
	Found    token.Token
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: expected %s, found %s", e.Pos, e.Expected, e.Found)
}
