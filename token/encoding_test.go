package token

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func utf16le(bom bool, s string) []byte {
	var buf bytes.Buffer
	if bom {
		buf.Write([]byte{0xFF, 0xFE})
	}
	for _, r := range s {
		buf.WriteByte(byte(r))
		buf.WriteByte(byte(r >> 8))
	}
	return buf.Bytes()
}

func TestDecodingReaderBOM(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want []lexedToken
	}{
		{
			name: "utf-8 bom discarded",
			in:   append([]byte{0xEF, 0xBB, 0xBF}, `<a>x</a>`...),
			want: []lexedToken{{TStart, "a"}, {TText, "x"}, {TEnd, "a"}},
		},
		{
			name: "utf-16le bom",
			in:   utf16le(true, `<a>x</a>`),
			want: []lexedToken{{TStart, "a"}, {TText, "x"}, {TEnd, "a"}},
		},
		{
			name: "utf-16be bom",
			in: func() []byte {
				le := utf16le(false, `<a/>`)
				be := []byte{0xFE, 0xFF}
				for i := 0; i < len(le); i += 2 {
					be = append(be, le[i+1], le[i])
				}
				return be
			}(),
			want: []lexedToken{{TEmpty, "a"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := readAll(t, bytes.NewReader(tt.in))
			if err != nil {
				t.Fatalf("readAll: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("tokens mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecodingReaderDeclaredEncoding(t *testing.T) {
	// é is byte 0xE9 in ISO-8859-1
	in := []byte(`<?xml version="1.0" encoding="ISO-8859-1"?><a>caf`)
	in = append(in, 0xE9)
	in = append(in, `</a>`...)
	got, err := readAll(t, bytes.NewReader(in))
	if err != nil {
		t.Fatalf("readAll: %v", err)
	}
	want := []lexedToken{
		{TPI, `xml version="1.0" encoding="ISO-8859-1"`},
		{TStart, "a"},
		{TText, "café"},
		{TEnd, "a"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("tokens mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodingReaderUnknownLabelFallsBack(t *testing.T) {
	in := `<?xml version="1.0" encoding="no-such-charset"?><a>x</a>`
	got, err := readAll(t, strings.NewReader(in))
	if err != nil {
		t.Fatalf("readAll: %v", err)
	}
	if len(got) != 4 || got[2].Value != "x" {
		t.Errorf("unexpected tokens %v", got)
	}
}

func TestDeclEncoding(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`<?xml version="1.0" encoding="UTF-8"?>`, "UTF-8"},
		{`<?xml version="1.0" encoding='latin1'?>`, "latin1"},
		{`<?xml version="1.0" encoding = "x" ?>`, "x"},
		{`<?xml version="1.0"?>`, ""},
		{`<a>no decl</a>`, ""},
		{`<?xml encoding="unterminated`, ""},
	}
	for _, tt := range tests {
		if got := declEncoding([]byte(tt.in)); got != tt.want {
			t.Errorf("declEncoding(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
