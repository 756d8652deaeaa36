package stream

import "fmt"

// Error is a well-formedness failure detected at the event layer, such
// as an end tag that does not match the innermost open element. Lexical
// failures from the token layer pass through as *token.SyntaxError and
// are not wrapped.
type Error struct {
	Msg    string
	Offset int64
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at offset %d", e.Msg, e.Offset)
}
