package token

import (
	"bytes"
	"strconv"
	"unicode/utf8"
)

// maxEntityLen bounds the search for a closing ';' so a bare '&'
// cannot make the lexer buffer input indefinitely.
const maxEntityLen = 32

var predefEntities = map[string]rune{
	"lt":   '<',
	"gt":   '>',
	"amp":  '&',
	"apos": '\'',
	"quot": '"',
}

// unescapeAppend appends raw character data to dst with entity
// references resolved and line endings normalized to '\n'. It returns
// the extended buffer and the index in raw of the first malformed
// reference, or -1 when the run is clean.
func unescapeAppend(dst, raw []byte) ([]byte, int) {
	for i := 0; i < len(raw); {
		c := raw[i]
		switch c {
		case '&':
			r, n := resolveEntity(raw[i:])
			if n == 0 {
				return dst, i
			}
			dst = utf8.AppendRune(dst, r)
			i += n
		case '\r':
			dst = append(dst, '\n')
			if i+1 < len(raw) && raw[i+1] == '\n' {
				i++
			}
			i++
		default:
			dst = append(dst, c)
			i++
		}
	}
	return dst, -1
}

// resolveEntity reads one entity reference at the start of raw and
// returns the rune plus the number of bytes consumed, or 0 bytes when
// the reference is malformed or unknown.
func resolveEntity(raw []byte) (rune, int) {
	limit := min(len(raw), maxEntityLen)
	semi := bytes.IndexByte(raw[:limit], ';')
	if semi < 2 {
		return 0, 0
	}
	body := string(raw[1:semi])
	if body[0] == '#' {
		digits := body[1:]
		base := 10
		if len(digits) > 0 && (digits[0] == 'x' || digits[0] == 'X') {
			digits = digits[1:]
			base = 16
		}
		v, err := strconv.ParseUint(digits, base, 32)
		if err != nil || !utf8.ValidRune(rune(v)) {
			return 0, 0
		}
		return rune(v), semi + 1
	}
	if r, ok := predefEntities[body]; ok {
		return r, semi + 1
	}
	return 0, 0
}
