package yml

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Node is an ordered, loosely-typed document tree. Mapping keys keep their
// document order and repeated keys are all retained.
type Node yaml.Node

// Decode builds a tree from JSON text using the streaming tokenizer. The
// text is expected to be a single well-formed JSON value.
func Decode(data []byte) (*Node, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	node, err := decodeValue(decoder)
	if err != nil {
		return nil, err
	}
	return (*Node)(node), nil
}

func decodeValue(decoder *json.Decoder) (*yaml.Node, error) {
	token, err := decoder.Token()
	if err != nil {
		return nil, err
	}
	switch actual := token.(type) {
	case json.Delim:
		switch actual {
		case '{':
			return decodeMapping(decoder)
		case '[':
			return decodeSequence(decoder)
		}
		return nil, fmt.Errorf("unexpected delimiter %v", actual)
	case string:
		return stringNode(actual), nil
	case json.Number:
		return numberNode(string(actual)), nil
	case float64:
		return numberNode(strconv.FormatFloat(actual, 'g', -1, 64)), nil
	case bool:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(actual)}, nil
	case nil:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}, nil
	}
	return nil, fmt.Errorf("unexpected token %T", token)
}

func decodeMapping(decoder *json.Decoder) (*yaml.Node, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for decoder.More() {
		token, err := decoder.Token()
		if err != nil {
			return nil, err
		}
		key, ok := token.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected object key %v", token)
		}
		value, err := decodeValue(decoder)
		if err != nil {
			return nil, err
		}
		node.Content = append(node.Content, stringNode(key), value)
	}
	if _, err := decoder.Token(); err != nil {
		return nil, err
	}
	return node, nil
}

func decodeSequence(decoder *json.Decoder) (*yaml.Node, error) {
	node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	for decoder.More() {
		item, err := decodeValue(decoder)
		if err != nil {
			return nil, err
		}
		node.Content = append(node.Content, item)
	}
	if _, err := decoder.Token(); err != nil {
		return nil, err
	}
	return node, nil
}

func stringNode(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value, Style: yaml.DoubleQuotedStyle}
}

// numberNode keeps the literal text; integers and fractions are told apart by tag.
func numberNode(literal string) *yaml.Node {
	tag := "!!int"
	if strings.ContainsAny(literal, ".eE") {
		tag = "!!float"
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: literal}
}

// IsMapping reports whether n is a mapping node.
func (n *Node) IsMapping() bool {
	return n != nil && n.Kind == yaml.MappingNode
}

// IsSequence reports whether n is a sequence node.
func (n *Node) IsSequence() bool {
	return n != nil && n.Kind == yaml.SequenceNode
}

// IsNull reports whether n is an explicit null scalar.
func (n *Node) IsNull() bool {
	return n != nil && n.Kind == yaml.ScalarNode && n.Tag == "!!null"
}

// Lookup returns the value node for key, or nil when n is not a mapping or
// the key is absent. When a key repeats, the last occurrence wins.
func (n *Node) Lookup(key string) *Node {
	if !n.IsMapping() {
		return nil
	}
	var result *Node
	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].Value == key {
			result = (*Node)(n.Content[i+1])
		}
	}
	return result
}

// Has reports whether the mapping n defines key.
func (n *Node) Has(key string) bool {
	return n.Lookup(key) != nil
}

// Len returns the number of sequence items; any other node has none.
func (n *Node) Len() int {
	if !n.IsSequence() {
		return 0
	}
	return len(n.Content)
}

func (n *Node) Items(callback func(index int, node *Node) error) error {
	if !n.IsSequence() {
		return nil
	}
	for i := 0; i < len(n.Content); i++ {
		if err := callback(i, (*Node)(n.Content[i])); err != nil {
			return err
		}
	}
	return nil
}

// Bool returns the boolean value of a boolean scalar; ok is false otherwise.
func (n *Node) Bool() (value bool, ok bool) {
	if n == nil || n.Kind != yaml.ScalarNode || n.Tag != "!!bool" {
		return false, false
	}
	return strings.EqualFold(n.Value, "true"), true
}

// Text renders n for display: scalars as their literal value, compound
// nodes as compact JSON in document order.
func (n *Node) Text() string {
	if n == nil {
		return ""
	}
	if n.Kind == yaml.ScalarNode {
		if n.Tag == "!!null" {
			return "null"
		}
		return n.Value
	}
	buf := &bytes.Buffer{}
	n.encode(buf)
	return buf.String()
}

func (n *Node) encode(buf *bytes.Buffer) {
	switch n.Kind {
	case yaml.MappingNode:
		buf.WriteByte('{')
		for i := 0; i+1 < len(n.Content); i += 2 {
			if i > 0 {
				buf.WriteByte(',')
			}
			writeString(buf, n.Content[i].Value)
			buf.WriteByte(':')
			(*Node)(n.Content[i+1]).encode(buf)
		}
		buf.WriteByte('}')
	case yaml.SequenceNode:
		buf.WriteByte('[')
		for i, item := range n.Content {
			if i > 0 {
				buf.WriteByte(',')
			}
			(*Node)(item).encode(buf)
		}
		buf.WriteByte(']')
	case yaml.AliasNode:
		if n.Alias != nil {
			(*Node)(n.Alias).encode(buf)
		}
	case yaml.ScalarNode:
		switch n.Tag {
		case "!!str":
			writeString(buf, n.Value)
		case "!!null":
			buf.WriteString("null")
		default:
			buf.WriteString(n.Value)
		}
	}
}

func writeString(buf *bytes.Buffer, value string) {
	encoded, err := json.Marshal(value)
	if err != nil {
		buf.WriteString(value)
		return
	}
	buf.Write(encoded)
}
