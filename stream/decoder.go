package stream

import (
	"fmt"
	"io"
	"strings"

	"github.com/xmliter/go-xmliter/debug"
	"github.com/xmliter/go-xmliter/token"
)

// Decoder normalizes raw XML tokens into a lazy, forward-only event
// stream. Comments, processing instructions and directives are elided;
// adjacent character data runs (including CDATA) are coalesced into a
// single EventText before being yielded, untrimmed. The decoder only
// advances when the consumer asks for the next event, so stopping
// after K events costs resources proportional to K regardless of how
// much document remains.
type Decoder struct {
	source *token.Source

	tagStack []string

	// held buffers the one token read past the end of a text run while
	// coalescing; it is replayed on the next call
	held heldToken

	text  strings.Builder
	index uint64
	err   error
}

type heldToken struct {
	typ    token.TokenType
	value  string
	offset int64
	valid  bool
}

// NewDecoder creates a Decoder reading the XML document from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{source: token.NewSource(r)}
}

// ReadEvent returns the next structural event. It returns io.EOF at
// the end of the document. A malformed document surfaces as a
// *token.SyntaxError or *Error; the failure is sticky and no events
// are produced past it, except that a text run buffered before the
// failing token is yielded first.
func (d *Decoder) ReadEvent() (Event, error) {
	if d.err != nil {
		return Event{}, d.err
	}
	for {
		tok, err := d.nextToken()
		if err == io.EOF {
			if d.text.Len() > 0 {
				return d.emitText(), nil
			}
			return Event{}, io.EOF
		}
		if err != nil {
			d.err = err
			// character data gathered from complete tokens is still
			// good; yield it before going sticky
			if d.text.Len() > 0 {
				return d.emitText(), nil
			}
			return Event{}, err
		}
		switch tok.typ {
		case token.TText, token.TCData:
			d.text.WriteString(tok.value)
			continue
		case token.TComment, token.TPI, token.TDirective:
			// discarded silently; they also do not split a text run
			continue
		}
		if d.text.Len() > 0 {
			d.held = tok
			d.held.valid = true
			return d.emitText(), nil
		}
		switch tok.typ {
		case token.TStart:
			d.tagStack = append(d.tagStack, tok.value)
			return d.emit(EventStart, tok.value), nil
		case token.TEmpty:
			return d.emit(EventEmpty, tok.value), nil
		case token.TEnd:
			n := len(d.tagStack)
			if n == 0 {
				d.err = &Error{
					Msg:    fmt.Sprintf("end tag %q with no open element", tok.value),
					Offset: tok.offset,
				}
				return Event{}, d.err
			}
			if top := d.tagStack[n-1]; top != tok.value {
				d.err = &Error{
					Msg:    fmt.Sprintf("end tag %q does not match open element %q", tok.value, top),
					Offset: tok.offset,
				}
				return Event{}, d.err
			}
			d.tagStack = d.tagStack[:n-1]
			return d.emit(EventEnd, tok.value), nil
		}
	}
}

// Depth returns the number of currently open elements.
func (d *Decoder) Depth() int {
	return len(d.tagStack)
}

// CurrentTag returns the innermost open element name, if any.
func (d *Decoder) CurrentTag() (string, bool) {
	if n := len(d.tagStack); n > 0 {
		return d.tagStack[n-1], true
	}
	return "", false
}

func (d *Decoder) nextToken() (heldToken, error) {
	if d.held.valid {
		t := d.held
		d.held.valid = false
		return t, nil
	}
	tok, err := d.source.Next()
	if err != nil {
		return heldToken{}, err
	}
	// the raw token's bytes are reused by the source; take a copy
	return heldToken{typ: tok.Type, value: tok.String(), offset: tok.Offset}, nil
}

func (d *Decoder) emit(t EventType, v string) Event {
	ev := Event{Index: d.index, Type: t, Value: v}
	d.index++
	if debug.Events() {
		debug.Logf("event %d %s %q depth=%d", ev.Index, ev.Type, ev.Value, len(d.tagStack))
	}
	return ev
}

func (d *Decoder) emitText() Event {
	v := d.text.String()
	d.text.Reset()
	return d.emit(EventText, v)
}
