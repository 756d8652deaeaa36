package ir

import "testing"

func TestMarshalJSON(t *testing.T) {
	obj := Object()
	obj.Set("z", FromString("1"))
	obj.Set("a", FromSlice([]*Node{Null(), FromString("x")}))
	inner := Object()
	inner.Set("k", Null())
	obj.Set("m", inner)

	d, err := obj.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}
	// fields come out in insertion order, not sorted
	want := `{"z":"1","a":[null,"x"],"m":{"k":null}}`
	if string(d) != want {
		t.Errorf("MarshalJSON = %s, want %s", d, want)
	}
}

func TestMarshalJSONEscaping(t *testing.T) {
	d, err := FromString("a\"b\nc").MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}
	if want := `"a\"b\nc"`; string(d) != want {
		t.Errorf("MarshalJSON = %s, want %s", d, want)
	}
}

func TestFromJSON(t *testing.T) {
	in := `{"z":"1","a":[null,"x"],"m":{"k":null}}`
	node, err := FromJSON([]byte(in))
	if err != nil {
		t.Fatalf("FromJSON: %v", err)
	}
	// field order survives the round trip
	d, err := node.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}
	if string(d) != in {
		t.Errorf("round trip = %s, want %s", d, in)
	}
}

func TestFromJSONRejects(t *testing.T) {
	for _, in := range []string{
		`42`,
		`true`,
		`{"a":1}`,
		`[false]`,
		`{"a":null}{"b":null}`,
		`{"a":`,
	} {
		if _, err := FromJSON([]byte(in)); err == nil {
			t.Errorf("FromJSON(%s) succeeded, want error", in)
		}
	}
}
