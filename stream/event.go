package stream

import "fmt"

// Event is one structural event of an XML document.
//
// Index is assigned by the decoder, starts at 0 and increases by one
// per yielded event; it is the only identifier consumers may rely on
// for resumption or termination decisions. Value holds the tag name
// for EventStart/EventEnd/EventEmpty and the character data for
// EventText. Events are plain values: once yielded they are owned by
// the consumer and never touched by the decoder again.
type Event struct {
	Index uint64
	Type  EventType
	Value string
}

// EventType represents the kind of a structural event.
type EventType int

const (
	EventStart EventType = iota
	EventEnd
	EventText
	EventEmpty
)

func (t EventType) String() string {
	switch t {
	case EventStart:
		return "start"
	case EventEnd:
		return "end"
	case EventText:
		return "text"
	case EventEmpty:
		return "empty"
	default:
		return "unknown"
	}
}

func (t EventType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *EventType) UnmarshalText(d []byte) error {
	k := string(d)
	pt, ok := map[string]EventType{
		"start": EventStart,
		"end":   EventEnd,
		"text":  EventText,
		"empty": EventEmpty,
	}[k]
	if ok {
		*t = pt
		return nil
	}
	return fmt.Errorf("unknown event type %q", k)
}
