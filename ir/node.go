package ir

// Node is the variant type produced by reducing an XML event stream.
//
// The four cases mirror what the dictionary conversion can produce:
//
//   - NullType: an element with no children and no non-whitespace text
//   - StringType: an element whose only content is text
//   - ArrayType: repeated sibling tags collapsed into an ordered list
//   - ObjectType: an element with child elements, keyed by tag name
//
// ObjectType nodes keep Fields[i] as the key for Values[i]; insertion
// order is preserved so output matches the reference dictionary
// conversion field for field.
type Node struct {
	Type   Type
	String string
	Fields []string
	Values []*Node
}

func Null() *Node {
	return &Node{Type: NullType}
}

func FromString(v string) *Node {
	return &Node{
		Type:   StringType,
		String: v,
	}
}

func Object() *Node {
	return &Node{Type: ObjectType}
}

func FromSlice(vs []*Node) *Node {
	return &Node{
		Type:   ArrayType,
		Values: vs,
	}
}

// Get returns the value under field, or nil if absent.
// Valid only for ObjectType nodes.
func Get(y *Node, field string) *Node {
	n := len(y.Fields)
	for i := range n {
		if y.Fields[i] == field {
			return y.Values[i]
		}
	}
	return nil
}

// Set binds field to v, appending the field if new and replacing the
// value in place if the field is already present.
func (y *Node) Set(field string, v *Node) {
	for i := range y.Fields {
		if y.Fields[i] == field {
			y.Values[i] = v
			return
		}
	}
	y.Fields = append(y.Fields, field)
	y.Values = append(y.Values, v)
}

// Append appends v to an ArrayType node.
func (y *Node) Append(v *Node) {
	y.Values = append(y.Values, v)
}

// Len returns the number of entries of an object or array node,
// and 0 for leaves.
func (y *Node) Len() int {
	return len(y.Values)
}

func (y *Node) Clone() *Node {
	if y == nil {
		return nil
	}
	res := &Node{
		Type:   y.Type,
		String: y.String,
	}
	if y.Fields != nil {
		res.Fields = make([]string, len(y.Fields))
		copy(res.Fields, y.Fields)
	}
	if y.Values != nil {
		res.Values = make([]*Node, len(y.Values))
		for i, v := range y.Values {
			res.Values[i] = v.Clone()
		}
	}
	return res
}

// Visit walks the node tree in document order, calling f before and
// after each node's children. Returning false from the pre call skips
// the children.
func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}
