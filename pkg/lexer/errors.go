package lexer

import "github.com/pakhi-lang/pakhi/pkg/token"

// Error reports a lexical error at a specific source position.
type Error struct {
	Pos     token.Position
	Message string
}

func (e *Error) Error() string {
	return e.Pos.String() + ": " + e.Message
}
