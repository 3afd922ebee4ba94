package model

import "github.com/viant/wfreview/internal/yml"

// Top-level document keys.
const (
	KeyRelatives     = "relatives"
	KeyIndividual    = "individual"
	KeyTable         = "table"
	KeyRelationships = "relationships"
)

// Source describes where a document was loaded from.
type Source struct {
	URL string `json:"url,omitempty" yaml:"url,omitempty"`
}

// Document is a parsed workflow configuration. It is read-only.
type Document struct {
	Source *Source `json:"source,omitempty" yaml:"source,omitempty"`
	root   Value
}

// NewDocument wraps the root node of a parsed document.
func NewDocument(source *Source, root *yml.Node) *Document {
	return &Document{Source: source, root: NewValue(root)}
}

// Root returns the document root.
func (d *Document) Root() Value {
	return d.root
}

// Has reports whether the document defines the top-level key.
func (d *Document) Has(key string) bool {
	return d.root.Has(key)
}

// Relatives returns the raw relatives value.
func (d *Document) Relatives() Value {
	return d.root.Get(KeyRelatives)
}

// Steps returns the workflow steps in document order.
func (d *Document) Steps() []*Step {
	items := d.Relatives().Items()
	result := make([]*Step, 0, len(items))
	for _, item := range items {
		result = append(result, &Step{Value: item})
	}
	return result
}

// Fields returns the form field definitions in document order.
func (d *Document) Fields() []*Field {
	items := d.root.Get(KeyIndividual).Items()
	result := make([]*Field, 0, len(items))
	for _, item := range items {
		result = append(result, &Field{Value: item})
	}
	return result
}

// Table returns the table definition, or nil when the document has none.
func (d *Document) Table() *Table {
	value := d.root.Get(KeyTable)
	if !value.Present() {
		return nil
	}
	return &Table{Value: value}
}

// Relationships returns the relationships in document order.
func (d *Document) Relationships() []*Relationship {
	items := d.root.Get(KeyRelationships).Items()
	result := make([]*Relationship, 0, len(items))
	for _, item := range items {
		result = append(result, &Relationship{Value: item})
	}
	return result
}
