package token

import (
	"bytes"
	"io"
	"unicode"
	"unicode/utf8"
)

// lexOne lexes one token from the front of data. It returns the token
// and the number of bytes consumed, errNeedMore when data ends inside
// a token and more input may follow, io.EOF on an exhausted stream,
// and a *SyntaxError for markup that cannot be completed. base is the
// absolute offset of data[0], used for error positions.
func (s *Source) lexOne(data []byte, base int64, atEOF bool) (Token, int, error) {
	if len(data) == 0 {
		if atEOF {
			return Token{}, 0, io.EOF
		}
		return Token{}, 0, errNeedMore
	}
	if data[0] != '<' {
		return s.lexText(data, base, atEOF)
	}
	if len(data) < 2 {
		if atEOF {
			return Token{}, 0, syntaxErr(base, "unexpected EOF after '<'")
		}
		return Token{}, 0, errNeedMore
	}
	switch data[1] {
	case '/':
		return lexEndTag(data, base, atEOF)
	case '?':
		return lexPI(data, base, atEOF)
	case '!':
		return lexBang(data, base, atEOF)
	default:
		return lexStartTag(data, base, atEOF)
	}
}

// lexText lexes a run of character data up to the next '<'. Runs that
// span buffer refills are emitted piecewise; the event layer coalesces
// them, keeping peak memory independent of run length.
func (s *Source) lexText(data []byte, base int64, atEOF bool) (Token, int, error) {
	end := bytes.IndexByte(data, '<')
	complete := end >= 0
	if !complete {
		end = len(data)
	}
	run := data[:end]
	if !complete && !atEOF {
		// hold back a split entity reference or a trailing CR so the
		// next refill can complete it
		if amp := bytes.LastIndexByte(run, '&'); amp >= 0 &&
			len(run)-amp <= maxEntityLen && bytes.IndexByte(run[amp:], ';') < 0 {
			run = run[:amp]
		} else if len(run) > 0 && run[len(run)-1] == '\r' {
			run = run[:len(run)-1]
		}
		if len(run) == 0 {
			return Token{}, 0, errNeedMore
		}
	}
	s.scratch = s.scratch[:0]
	out, bad := unescapeAppend(s.scratch, run)
	s.scratch = out
	if bad >= 0 {
		return Token{}, 0, syntaxErr(base+int64(bad), "malformed entity reference")
	}
	return Token{Type: TText, Bytes: out}, len(run), nil
}

func lexStartTag(data []byte, base int64, atEOF bool) (Token, int, error) {
	var quote byte
	for i := 1; i < len(data); i++ {
		c := data[i]
		if quote != 0 {
			if c == quote {
				quote = 0
			}
			continue
		}
		switch c {
		case '"', '\'':
			quote = c
		case '>':
			inner := data[1:i]
			typ := TStart
			if len(inner) > 0 && inner[len(inner)-1] == '/' {
				typ = TEmpty
				inner = inner[:len(inner)-1]
			}
			name := tagName(inner)
			if !validName(name) {
				return Token{}, 0, syntaxErr(base+1, "invalid tag name %q", name)
			}
			return Token{Type: typ, Bytes: name}, i + 1, nil
		}
	}
	if atEOF {
		return Token{}, 0, syntaxErr(base, "unclosed start tag")
	}
	return Token{}, 0, errNeedMore
}

func lexEndTag(data []byte, base int64, atEOF bool) (Token, int, error) {
	end := bytes.IndexByte(data, '>')
	if end < 0 {
		if atEOF {
			return Token{}, 0, syntaxErr(base, "unclosed end tag")
		}
		return Token{}, 0, errNeedMore
	}
	name := bytes.TrimRight(data[2:end], " \t\r\n")
	if !validName(name) {
		return Token{}, 0, syntaxErr(base+2, "invalid end tag name %q", name)
	}
	return Token{Type: TEnd, Bytes: name}, end + 1, nil
}

func lexPI(data []byte, base int64, atEOF bool) (Token, int, error) {
	end := bytes.Index(data, []byte("?>"))
	if end < 0 {
		if atEOF {
			return Token{}, 0, syntaxErr(base, "unterminated processing instruction")
		}
		return Token{}, 0, errNeedMore
	}
	return Token{Type: TPI, Bytes: data[2:end]}, end + 2, nil
}

func lexBang(data []byte, base int64, atEOF bool) (Token, int, error) {
	const cdataOpen = "[CDATA["
	rest := data[2:]
	switch {
	case bytes.HasPrefix(rest, []byte("--")):
		end := bytes.Index(data[4:], []byte("-->"))
		if end < 0 {
			if atEOF {
				return Token{}, 0, syntaxErr(base, "unterminated comment")
			}
			return Token{}, 0, errNeedMore
		}
		return Token{Type: TComment, Bytes: data[4 : 4+end]}, 4 + end + 3, nil
	case bytes.HasPrefix(rest, []byte(cdataOpen)):
		body := data[2+len(cdataOpen):]
		end := bytes.Index(body, []byte("]]>"))
		if end < 0 {
			if atEOF {
				return Token{}, 0, syntaxErr(base, "unterminated CDATA section")
			}
			return Token{}, 0, errNeedMore
		}
		return Token{Type: TCData, Bytes: body[:end]}, 2 + len(cdataOpen) + end + 3, nil
	}
	if !atEOF && len(rest) < len(cdataOpen) &&
		(bytes.HasPrefix([]byte(cdataOpen), rest) || bytes.HasPrefix([]byte("--"), rest)) {
		return Token{}, 0, errNeedMore
	}
	// <!DOCTYPE and friends; a '>' inside an internal subset [...] does
	// not terminate the directive
	depth := 0
	for i := 2; i < len(data); i++ {
		switch data[i] {
		case '[':
			depth++
		case ']':
			depth--
		case '>':
			if depth <= 0 {
				return Token{Type: TDirective, Bytes: data[2:i]}, i + 1, nil
			}
		}
	}
	if atEOF {
		return Token{}, 0, syntaxErr(base, "unterminated directive")
	}
	return Token{}, 0, errNeedMore
}

// tagName cuts the element name off the front of a tag's interior,
// leaving any attributes behind.
func tagName(inner []byte) []byte {
	for i, c := range inner {
		if c == ' ' || c == '\t' || c == '\r' || c == '\n' || c == '/' {
			return inner[:i]
		}
	}
	return inner
}

func validName(name []byte) bool {
	if len(name) == 0 {
		return false
	}
	first, _ := utf8.DecodeRune(name)
	if first != '_' && first != ':' && !unicode.IsLetter(first) {
		return false
	}
	for _, r := range string(name) {
		switch {
		case r == '_' || r == ':' || r == '-' || r == '.':
		case unicode.IsLetter(r) || unicode.IsDigit(r):
		default:
			return false
		}
	}
	return true
}
