package edges

import (
	"io"

	"github.com/xmliter/go-xmliter/stream"
)

// Edge is a direct parent/child tag pairing. Root elements have no
// parent and do not form edges.
type Edge struct {
	Parent string
	Child  string
}

// Table maps each observed edge to the number of times it occurred.
type Table map[Edge]int

// Result carries an edge count outcome. As with dict conversion, Err
// records a mid-stream failure while Edges keeps the counts gathered
// before it.
type Result struct {
	Edges  Table
	Events uint64
	Err    error
}

type Option func(*options)

type options struct {
	maxEvents uint64
}

// WithMaxEvents stops consuming the stream after n events. The limit
// is in events, not edges: text and end events count toward it without
// changing the table. Zero means no limit.
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

// Counter tallies parent/child edges from a normalized event stream.
type Counter struct {
	table  Table
	stack  []string
	events uint64
}

func NewCounter() *Counter {
	return &Counter{table: Table{}}
}

func (c *Counter) Feed(ev stream.Event) {
	c.events++
	switch ev.Type {
	case stream.EventStart:
		c.bump(ev.Value)
		c.stack = append(c.stack, ev.Value)
	case stream.EventEmpty:
		c.bump(ev.Value)
	case stream.EventEnd:
		if n := len(c.stack); n > 0 {
			c.stack = c.stack[:n-1]
		}
	}
}

// bump counts child under the innermost open element; with nothing
// open there is no edge to count.
func (c *Counter) bump(child string) {
	n := len(c.stack)
	if n == 0 {
		return
	}
	c.table[Edge{Parent: c.stack[n-1], Child: child}]++
}

// Table returns the counts gathered so far.
func (c *Counter) Table() Table {
	return c.table
}

// EventCount returns the number of events fed so far.
func (c *Counter) EventCount() uint64 {
	return c.events
}

// CountReader tallies the edges of the XML document read from r.
func CountReader(r io.Reader, opts ...Option) *Result {
	return count(stream.NewDecoder(r), buildOptions(opts))
}

// Count tallies the edges of the XML document at path. The returned
// error is non-nil only when the file cannot be opened.
func Count(path string, opts ...Option) (*Result, error) {
	fd, err := stream.Open(path)
	if err != nil {
		return nil, err
	}
	defer fd.Close()
	return count(fd.Decoder, buildOptions(opts)), nil
}

func count(dec *stream.Decoder, o options) *Result {
	ctr := NewCounter()
	var cause error
	for o.maxEvents == 0 || ctr.events < o.maxEvents {
		ev, err := dec.ReadEvent()
		if err == io.EOF {
			break
		}
		if err != nil {
			cause = err
			break
		}
		ctr.Feed(ev)
	}
	return &Result{Edges: ctr.Table(), Events: ctr.EventCount(), Err: cause}
}
