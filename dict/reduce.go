package dict

import (
	"io"
	"strings"

	"github.com/xmliter/go-xmliter/ir"
	"github.com/xmliter/go-xmliter/stream"
)

// Result carries the outcome of a dictionary conversion. Err records a
// mid-stream parse failure; Root still holds everything reduced from
// the events that arrived before it. A clean empty document yields an
// empty object and a nil Err, so the two cases stay distinguishable.
type Result struct {
	Root   *ir.Node
	Events uint64
	Err    error
}

type Option func(*options)

type options struct {
	maxEvents uint64
}

// WithMaxEvents stops consuming the stream after n events and reduces
// what was seen. Zero means no limit.
func WithMaxEvents(n uint64) Option {
	return func(o *options) {
		o.maxEvents = n
	}
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Reducer folds a normalized event stream into a Node tree. Feed
// events in document order, then call Finish. For whole-document
// conversion use FromFile or FromReader instead.
type Reducer struct {
	root   *ir.Node
	stack  []*frame
	events uint64
}

type frame struct {
	name string
	obj  *ir.Node
	text strings.Builder
}

func NewReducer() *Reducer {
	return &Reducer{root: ir.Object()}
}

func (r *Reducer) Feed(ev stream.Event) {
	r.events++
	switch ev.Type {
	case stream.EventStart:
		r.stack = append(r.stack, &frame{name: ev.Value, obj: ir.Object()})
	case stream.EventText:
		if n := len(r.stack); n > 0 {
			r.stack[n-1].text.WriteString(ev.Value)
		}
	case stream.EventEmpty:
		attach(r.parent(), ev.Value, ir.Null())
	case stream.EventEnd:
		n := len(r.stack)
		if n == 0 {
			// stray end tags are the event layer's error to report
			return
		}
		f := r.stack[n-1]
		val := finalize(f)
		r.stack = r.stack[:n-1]
		attach(r.parent(), f.name, val)
	}
}

// Finish closes any elements still open and returns the reduced root.
// Elements remain open when the stream ended early, after a parse
// failure or an event limit; they are finalized as if their end tags
// had arrived, so no reduced content is ever discarded.
func (r *Reducer) Finish() *ir.Node {
	for n := len(r.stack); n > 0; n = len(r.stack) {
		f := r.stack[n-1]
		val := finalize(f)
		r.stack = r.stack[:n-1]
		attach(r.parent(), f.name, val)
	}
	return r.root
}

// EventCount returns the number of events fed so far.
func (r *Reducer) EventCount() uint64 {
	return r.events
}

func (r *Reducer) parent() *ir.Node {
	if n := len(r.stack); n > 0 {
		return r.stack[n-1].obj
	}
	return r.root
}

// finalize reduces a closed element to its value: child elements win
// over text (mixed content drops the text), non-whitespace text wins
// over emptiness, and an element with neither becomes null. Text is
// trimmed at the edges only; interior whitespace survives verbatim.
func finalize(f *frame) *ir.Node {
	if f.obj.Len() > 0 {
		return f.obj
	}
	if text := strings.TrimSpace(f.text.String()); text != "" {
		return ir.FromString(text)
	}
	return ir.Null()
}

// attach binds val under key in parent, promoting to a list when the
// key repeats: a second sibling turns the existing value into a
// two-element list, later siblings append. Lists never occur as
// element values otherwise, so an existing ArrayType always means a
// promoted key.
func attach(parent *ir.Node, key string, val *ir.Node) {
	existing := ir.Get(parent, key)
	switch {
	case existing == nil:
		parent.Set(key, val)
	case existing.Type == ir.ArrayType:
		existing.Append(val)
	default:
		parent.Set(key, ir.FromSlice([]*ir.Node{existing, val}))
	}
}

// FromReader converts the XML document read from r into its nested
// dictionary form.
func FromReader(r io.Reader, opts ...Option) *Result {
	return reduce(stream.NewDecoder(r), buildOptions(opts))
}

// FromFile converts the XML document at path. The returned error is
// non-nil only when the file cannot be opened; mid-stream parse
// failures are recorded in Result.Err next to the partial tree.
func FromFile(path string, opts ...Option) (*Result, error) {
	fd, err := stream.Open(path)
	if err != nil {
		return nil, err
	}
	defer fd.Close()
	return reduce(fd.Decoder, buildOptions(opts)), nil
}

func reduce(dec *stream.Decoder, o options) *Result {
	red := NewReducer()
	var cause error
	for o.maxEvents == 0 || red.events < o.maxEvents {
		ev, err := dec.ReadEvent()
		if err == io.EOF {
			break
		}
		if err != nil {
			cause = err
			break
		}
		red.Feed(ev)
	}
	return &Result{Root: red.Finish(), Events: red.EventCount(), Err: cause}
}
