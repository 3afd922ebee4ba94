package model

// Step represents one workflow stage (an entry of relatives).
type Step struct {
	Value
}

func (s *Step) Summary() Value   { return s.Get("summary") }
func (s *Step) ID() Value        { return s.Get("id") }
func (s *Step) Type() Value      { return s.Get("type") }
func (s *Step) Status() Value    { return s.Get("status") }
func (s *Step) PhaseType() Value { return s.Get("phaseType") }

// SLA returns the step service level, or nil when the step defines none.
func (s *Step) SLA() *SLA {
	value := s.Get("sla")
	if !value.Present() {
		return nil
	}
	return &SLA{Value: value}
}

// PrintConfig returns the step print configuration, or nil when absent.
func (s *Step) PrintConfig() *PrintConfig {
	value := s.Get("print-config")
	if !value.Present() {
		return nil
	}
	return &PrintConfig{Value: value}
}

// SLA holds response and fix times expressed in hours.
type SLA struct {
	Value
}

func (s *SLA) Response() Value { return s.Get("res") }
func (s *SLA) Fix() Value      { return s.Get("fix") }

// PrintConfig describes the document template used to print a step.
type PrintConfig struct {
	Value
}

func (p *PrintConfig) Filename() Value    { return p.Get("filename") }
func (p *PrintConfig) TemplateURL() Value { return p.Get("template-url") }

// Landscape defaults to false.
func (p *PrintConfig) Landscape() bool { return p.Get("landscape").Bool(false) }

// Parameters returns the template parameters; absent means empty.
func (p *PrintConfig) Parameters() []Value { return p.Get("parameters").Items() }

// Field is one form input definition (an entry of individual).
type Field struct {
	Value
}

func (f *Field) Type() Value { return f.Get("type") }
func (f *Field) Name() Value { return f.Get("name") }

// Required reads conditions.required, defaulting to false.
func (f *Field) Required() bool {
	return f.Get("conditions", "required").Bool(false)
}

// Table is the tabular schema of the workflow form.
type Table struct {
	Value
}

// Columns returns the table columns; absent means empty.
func (t *Table) Columns() []*Column {
	items := t.Get("columns").Items()
	result := make([]*Column, 0, len(items))
	for _, item := range items {
		result = append(result, &Column{Value: item})
	}
	return result
}

// Column is one table column definition.
type Column struct {
	Value
}

func (c *Column) Name() Value { return c.Get("name") }
func (c *Column) Type() Value { return c.Get("type") }

// Required reads conditions.required, defaulting to false.
func (c *Column) Required() bool {
	return c.Get("conditions", "required").Bool(false)
}

// Relationship is a directed, typed link between two named entities.
type Relationship struct {
	Value
}

func (r *Relationship) From() Value   { return r.Get("from") }
func (r *Relationship) To() Value     { return r.Get("to") }
func (r *Relationship) Type() Value   { return r.Get("type") }
func (r *Relationship) Status() Value { return r.Get("status") }
