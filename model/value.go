package model

import "github.com/viant/wfreview/internal/yml"

// Value is an optional node of the document tree. The zero Value is absent.
type Value struct {
	node *yml.Node
}

// NewValue wraps a tree node.
func NewValue(node *yml.Node) Value {
	return Value{node: node}
}

// Present reports whether the value exists in the document, including an
// explicit null.
func (v Value) Present() bool {
	return v.node != nil
}

// IsNull reports whether the value is an explicit null.
func (v Value) IsNull() bool {
	return v.node.IsNull()
}

// Has reports whether v is a mapping defining key.
func (v Value) Has(key string) bool {
	return v.node.Has(key)
}

// Get walks the mapping keys in path; any missing step yields an absent Value.
func (v Value) Get(path ...string) Value {
	node := v.node
	for _, key := range path {
		if node = node.Lookup(key); node == nil {
			return Value{}
		}
	}
	return Value{node: node}
}

// Text renders the value, or placeholder when it is absent.
func (v Value) Text(placeholder string) string {
	if v.node == nil {
		return placeholder
	}
	return v.node.Text()
}

// Bool returns the value of a JSON boolean, or def for anything else.
func (v Value) Bool(def bool) bool {
	if value, ok := v.node.Bool(); ok {
		return value
	}
	return def
}

// Len returns the number of sequence items; other shapes count as empty.
func (v Value) Len() int {
	return v.node.Len()
}

// Items returns the sequence items in document order.
func (v Value) Items() []Value {
	if v.Len() == 0 {
		return nil
	}
	result := make([]Value, 0, v.Len())
	_ = v.node.Items(func(_ int, node *yml.Node) error {
		result = append(result, Value{node: node})
		return nil
	})
	return result
}
