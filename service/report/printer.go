package report

import (
	"fmt"
	"io"
	"strings"
)

const (
	bannerWidth = 60
	ruleWidth   = 40
)

// Printer writes report lines and keeps the first write error.
type Printer struct {
	w   io.Writer
	err error
}

// NewPrinter creates a printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Printf writes a formatted line fragment. After a failed write it does nothing.
func (p *Printer) Printf(format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

// Line writes text followed by a newline.
func (p *Printer) Line(text string) {
	p.Printf("%s\n", text)
}

// Blank writes an empty line.
func (p *Printer) Blank() {
	p.Line("")
}

// Banner writes title between two double rules.
func (p *Printer) Banner(title string) {
	rule := strings.Repeat("=", bannerWidth)
	p.Line(rule)
	p.Line(title)
	p.Line(rule)
}

// Heading writes a section title followed by a single rule.
func (p *Printer) Heading(title string) {
	p.Line(title)
	p.Line(strings.Repeat("-", ruleWidth))
}

// Err returns the first write error.
func (p *Printer) Err() error {
	return p.err
}
