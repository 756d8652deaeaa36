package token

import (
	"errors"
	"fmt"
)

// SyntaxError is the typed failure for markup or character data the
// lexer cannot recover from. Offset is the byte position in the
// decoded (UTF-8) input where the problem was found.
type SyntaxError struct {
	Offset int64
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("xml syntax error at offset %d: %s", e.Offset, e.Msg)
}

func syntaxErr(offset int64, format string, args ...any) *SyntaxError {
	return &SyntaxError{Offset: offset, Msg: fmt.Sprintf(format, args...)}
}

// errNeedMore signals that the current buffer window ends inside a
// token; the source refills and retries.
var errNeedMore = errors.New("need more data")
