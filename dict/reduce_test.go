package dict

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func rootJSON(t *testing.T, res *Result) string {
	t.Helper()
	d, err := res.Root.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}
	return string(d)
}

func TestFromReader(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "self-closing element",
			in:   `<a/>`,
			want: `{"a":null}`,
		},
		{
			name: "empty element",
			in:   `<a></a>`,
			want: `{"a":null}`,
		},
		{
			name: "whitespace-only text",
			in:   "<a> \n\t </a>",
			want: `{"a":null}`,
		},
		{
			name: "text element",
			in:   `<a>x</a>`,
			want: `{"a":"x"}`,
		},
		{
			name: "outer whitespace trimmed",
			in:   `<a>  x  </a>`,
			want: `{"a":"x"}`,
		},
		{
			name: "interior whitespace preserved",
			in:   "<a>x \n y</a>",
			want: `{"a":"x \n y"}`,
		},
		{
			name: "nested elements",
			in:   `<r><a>1</a><b>2</b></r>`,
			want: `{"r":{"a":"1","b":"2"}}`,
		},
		{
			name: "repeated siblings promote to a list",
			in:   `<a><b/><b/></a>`,
			want: `{"a":{"b":[null,null]}}`,
		},
		{
			name: "later siblings append",
			in:   `<a><b>1</b><b>2</b><b>3</b></a>`,
			want: `{"a":{"b":["1","2","3"]}}`,
		},
		{
			name: "repeats among other keys",
			in:   `<a><b>1</b><c/><b>2</b></a>`,
			want: `{"a":{"b":["1","2"],"c":null}}`,
		},
		{
			name: "mixed content drops the text",
			in:   `<a>text<b/>more</a>`,
			want: `{"a":{"b":null}}`,
		},
		{
			name: "deep nesting",
			in:   `<a><b><c>v</c></b></a>`,
			want: `{"a":{"b":{"c":"v"}}}`,
		},
		{
			name: "cdata contributes text",
			in:   `<a><![CDATA[ <raw> ]]></a>`,
			want: `{"a":"<raw>"}`,
		},
		{
			name: "multiple roots",
			in:   `<a>1</a><b>2</b>`,
			want: `{"a":"1","b":"2"}`,
		},
		{
			name: "empty document",
			in:   ``,
			want: `{}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := FromReader(strings.NewReader(tt.in))
			if res.Err != nil {
				t.Fatalf("unexpected error: %v", res.Err)
			}
			if got := rootJSON(t, res); got != tt.want {
				t.Errorf("Root = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestFromReaderMalformed(t *testing.T) {
	// the end tag mismatch stops consumption; the open elements are
	// closed as-is and everything reduced so far is kept
	res := FromReader(strings.NewReader(`<a><b>kept</a>`))
	if res.Err == nil {
		t.Fatal("expected an error for mismatched end tag")
	}
	if got, want := rootJSON(t, res), `{"a":{"b":"kept"}}`; got != want {
		t.Errorf("Root = %s, want %s", got, want)
	}
}

func TestFromReaderLexicalFailure(t *testing.T) {
	// the bad token stops consumption, but text gathered before it
	// still reaches the reduced tree
	res := FromReader(strings.NewReader(`<a>good<1>`))
	if res.Err == nil {
		t.Fatal("expected an error for the invalid tag")
	}
	if got, want := rootJSON(t, res), `{"a":"good"}`; got != want {
		t.Errorf("Root = %s, want %s", got, want)
	}
}

func TestFromReaderTruncated(t *testing.T) {
	res := FromReader(strings.NewReader(`<a><b>x`))
	if res.Err != nil {
		t.Fatalf("truncated input is not a decode error, got %v", res.Err)
	}
	if got, want := rootJSON(t, res), `{"a":{"b":"x"}}`; got != want {
		t.Errorf("Root = %s, want %s", got, want)
	}
}

func TestWithMaxEvents(t *testing.T) {
	res := FromReader(strings.NewReader(`<a><b/><c/><d/></a>`), WithMaxEvents(2))
	if res.Events != 2 {
		t.Fatalf("Events = %d, want 2", res.Events)
	}
	if got, want := rootJSON(t, res), `{"a":{"b":null}}`; got != want {
		t.Errorf("Root = %s, want %s", got, want)
	}
}

func TestFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.xml")
	if err := os.WriteFile(path, []byte(`<r><a>1</a></r>`), 0644); err != nil {
		t.Fatal(err)
	}
	res, err := FromFile(path)
	if err != nil {
		t.Fatalf("FromFile: %v", err)
	}
	if got, want := rootJSON(t, res), `{"r":{"a":"1"}}`; got != want {
		t.Errorf("Root = %s, want %s", got, want)
	}
	if _, err := FromFile(filepath.Join(t.TempDir(), "missing.xml")); err == nil {
		t.Error("expected an open error for a missing file")
	}
}

func TestReducerEventCount(t *testing.T) {
	res := FromReader(strings.NewReader(`<a><b/></a>`))
	if res.Events != 3 {
		t.Errorf("Events = %d, want 3", res.Events)
	}
}
