package stream

import (
	"io"
	"iter"
	"os"
)

// FileDecoder is a Decoder that owns its underlying file handle.
type FileDecoder struct {
	*Decoder
	f *os.File
}

// Open opens the XML document at path for event iteration. The file
// stays open until Close is called.
func Open(path string) (*FileDecoder, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return &FileDecoder{Decoder: NewDecoder(f), f: f}, nil
}

func (fd *FileDecoder) Close() error {
	return fd.f.Close()
}

// Events returns the event sequence of the XML document at path as a
// range-over-func sequence. The file is opened when iteration starts
// and closed on every exit path, including an early break. Open
// failures and mid-stream parse failures are yielded as the sequence's
// final element, with a zero Event.
func Events(path string) iter.Seq2[Event, error] {
	return func(yield func(Event, error) bool) {
		fd, err := Open(path)
		if err != nil {
			yield(Event{}, err)
			return
		}
		defer fd.Close()
		for {
			ev, err := fd.ReadEvent()
			if err == io.EOF {
				return
			}
			if err != nil {
				yield(Event{}, err)
				return
			}
			if !yield(ev, nil) {
				return
			}
		}
	}
}
