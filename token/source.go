package token

import (
	"io"

	"github.com/xmliter/go-xmliter/debug"
)

const defaultBufferSize = 4096

// Source provides streaming XML tokenization from an io.Reader.
// It decodes the input to UTF-8, buffers only as much as the current
// token needs, and never looks past the token being lexed, so peak
// memory is bounded by the largest single token rather than by
// document size or nesting depth.
type Source struct {
	reader io.Reader

	buf      []byte
	bufStart int64 // absolute offset of buf[0] in the decoded stream
	bufPos   int

	scratch []byte // reused for unescaped character data

	eof bool
	err error
}

// NewSource creates a Source reading from r. The input's character
// encoding is resolved from a byte order mark or the XML declaration,
// with UTF-8 as the default.
func NewSource(r io.Reader) *Source {
	return &Source{reader: decodingReader(r)}
}

// Next returns the next raw token. The token's Bytes alias internal
// buffers that are reused by later calls; consumers copy what they
// keep. Next returns io.EOF at the end of input. Errors are sticky:
// once Next fails, every later call returns the same error.
func (s *Source) Next() (Token, error) {
	if s.err != nil {
		return Token{}, s.err
	}
	for {
		tok, n, err := s.lexOne(s.buf[s.bufPos:], s.bufStart+int64(s.bufPos), s.eof)
		switch err {
		case nil:
		case errNeedMore:
			if err := s.fill(); err != nil {
				if err == io.EOF {
					s.eof = true
					continue
				}
				s.err = err
				return Token{}, err
			}
			continue
		default:
			s.err = err
			return Token{}, err
		}
		tok.Offset = s.bufStart + int64(s.bufPos)
		s.bufPos += n
		if debug.Tokens() {
			debug.Logf("token %s", tok.Info())
		}
		return tok, nil
	}
}

// InputOffset returns the current byte position in the decoded stream.
func (s *Source) InputOffset() int64 {
	return s.bufStart + int64(s.bufPos)
}

func (s *Source) fill() error {
	// compact consumed bytes before growing the buffer further
	if s.bufPos > defaultBufferSize && len(s.buf) > defaultBufferSize*2 {
		remaining := s.buf[s.bufPos:]
		copy(s.buf, remaining)
		s.buf = s.buf[:len(remaining)]
		s.bufStart += int64(s.bufPos)
		s.bufPos = 0
	}
	readBuf := make([]byte, defaultBufferSize)
	n, err := s.reader.Read(readBuf)
	if n > 0 {
		s.buf = append(s.buf, readBuf[:n]...)
		if err == io.EOF {
			return io.EOF
		}
		return nil
	}
	return err
}
