package token

import (
	"bufio"
	"bytes"
	"io"
	"strings"

	"golang.org/x/net/html/charset"
)

const declProbeSize = 1024

// decodingReader resolves the input's character encoding and returns a
// reader producing UTF-8. Detection order: byte order mark first, then
// the XML declaration's encoding pseudo-attribute. A missing,
// unrecognized or unsupported label falls back to UTF-8 rather than
// failing; re-invoking with a different assumed encoding is the
// caller's business.
func decodingReader(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	if head, err := br.Peek(3); err == nil && bytes.HasPrefix(head, []byte{0xEF, 0xBB, 0xBF}) {
		br.Discard(3)
		return br
	}
	if head, err := br.Peek(2); err == nil {
		switch {
		case head[0] == 0xFF && head[1] == 0xFE:
			br.Discard(2)
			return labelReader("utf-16le", br)
		case head[0] == 0xFE && head[1] == 0xFF:
			br.Discard(2)
			return labelReader("utf-16be", br)
		}
	}
	head, _ := br.Peek(declProbeSize)
	label := declEncoding(head)
	switch strings.ToLower(label) {
	case "", "utf-8", "utf8", "us-ascii", "ascii":
		return br
	}
	return labelReader(label, br)
}

func labelReader(label string, r io.Reader) io.Reader {
	cr, err := charset.NewReaderLabel(label, r)
	if err != nil {
		return r
	}
	return cr
}

// declEncoding extracts the encoding label from an XML declaration at
// the start of head, or returns "" when there is none.
func declEncoding(head []byte) string {
	if !bytes.HasPrefix(head, []byte("<?xml")) {
		return ""
	}
	end := bytes.Index(head, []byte("?>"))
	if end < 0 {
		return ""
	}
	decl := head[:end]
	i := bytes.Index(decl, []byte("encoding"))
	if i < 0 {
		return ""
	}
	rest := bytes.TrimLeft(decl[i+len("encoding"):], " \t\r\n")
	if len(rest) == 0 || rest[0] != '=' {
		return ""
	}
	rest = bytes.TrimLeft(rest[1:], " \t\r\n")
	if len(rest) < 2 {
		return ""
	}
	q := rest[0]
	if q != '"' && q != '\'' {
		return ""
	}
	j := bytes.IndexByte(rest[1:], q)
	if j < 0 {
		return ""
	}
	return string(rest[1 : 1+j])
}
