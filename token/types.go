package token

import "fmt"

type TokenType int

const (
	TStart TokenType = iota
	TEnd
	TEmpty
	TText
	TCData
	TComment
	TPI
	TDirective
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TStart:     "TStart",
		TEnd:       "TEnd",
		TEmpty:     "TEmpty",
		TText:      "TText",
		TCData:     "TCData",
		TComment:   "TComment",
		TPI:        "TPI",
		TDirective: "TDirective",
	}[t]
}

// Token is one raw lexical item of an XML document. Bytes holds the
// tag name for TStart/TEnd/TEmpty and the content for the other types;
// the backing array is reused between Next calls, so consumers copy
// what they keep.
type Token struct {
	Type   TokenType
	Bytes  []byte
	Offset int64
}

func (t *Token) String() string {
	return string(t.Bytes)
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %q at %d", t.Type, t.Bytes, t.Offset)
}
