package ir

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// MarshalJSON encodes the node with object fields in insertion order,
// matching the reference dictionary conversion. The stdlib map encoder
// would sort keys, so objects are written by hand.
func (y *Node) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := writeJSON(&buf, y); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// writeJSONString encodes s without HTML escaping, so `<`, `>` and `&`
// survive round-trips; json.Marshal would emit < style escapes.
func writeJSONString(buf *bytes.Buffer, s string) error {
	var scratch bytes.Buffer
	enc := json.NewEncoder(&scratch)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	buf.Write(bytes.TrimSuffix(scratch.Bytes(), []byte("\n")))
	return nil
}

func writeJSON(buf *bytes.Buffer, y *Node) error {
	if y == nil {
		buf.WriteString("null")
		return nil
	}
	switch y.Type {
	case NullType:
		buf.WriteString("null")
	case StringType:
		if err := writeJSONString(buf, y.String); err != nil {
			return err
		}
	case ArrayType:
		buf.WriteByte('[')
		for i, v := range y.Values {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSON(buf, v); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case ObjectType:
		buf.WriteByte('{')
		for i, f := range y.Fields {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSONString(buf, f); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := writeJSON(buf, y.Values[i]); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	default:
		return fmt.Errorf("cannot encode node type %s", y.Type)
	}
	return nil
}

// FromJSON decodes a JSON document into a Node, preserving object field
// order. Only null, string, array and object values are representable;
// numbers and booleans are rejected.
func FromJSON(d []byte) (*Node, error) {
	dec := json.NewDecoder(bytes.NewReader(d))
	node, err := decodeJSONValue(dec)
	if err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, fmt.Errorf("trailing data after JSON document")
	}
	return node, nil
}

func decodeJSONValue(dec *json.Decoder) (*Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch t := tok.(type) {
	case nil:
		return Null(), nil
	case string:
		return FromString(t), nil
	case json.Delim:
		switch t {
		case '{':
			res := Object()
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("object key %v is not a string", keyTok)
				}
				val, err := decodeJSONValue(dec)
				if err != nil {
					return nil, err
				}
				res.Set(key, val)
			}
			if _, err := dec.Token(); err != nil { // consume '}'
				return nil, err
			}
			return res, nil
		case '[':
			res := FromSlice(nil)
			for dec.More() {
				val, err := decodeJSONValue(dec)
				if err != nil {
					return nil, err
				}
				res.Append(val)
			}
			if _, err := dec.Token(); err != nil { // consume ']'
				return nil, err
			}
			return res, nil
		}
		return nil, fmt.Errorf("unexpected delimiter %v", t)
	default:
		return nil, fmt.Errorf("JSON value %v has no node representation", tok)
	}
}
