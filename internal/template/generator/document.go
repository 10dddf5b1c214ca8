package generator

import "strings"

// Document is a generated C source file held as an ordered list of lines.
type Document struct {
	lines []string
}

// Append adds lines to the end of the document.
func (d *Document) Append(lines ...string) {
	d.lines = append(d.lines, lines...)
}

// Separate appends a blank line unless the document is empty, so groups are
// separated but the document never starts with a blank line.
func (d *Document) Separate() {
	if len(d.lines) > 0 {
		d.lines = append(d.lines, "")
	}
}

// Len returns the number of lines.
func (d *Document) Len() int {
	return len(d.lines)
}

// Lines returns a copy of the document lines.
func (d *Document) Lines() []string {
	out := make([]string, len(d.lines))
	copy(out, d.lines)
	return out
}

// String joins the lines with newlines, without a trailing newline.
func (d *Document) String() string {
	return strings.Join(d.lines, "\n")
}

// Bytes returns the file content: the joined lines plus a final newline.
func (d *Document) Bytes() []byte {
	return []byte(d.String() + "\n")
}
