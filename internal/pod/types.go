// Package pod models embedded documentation as a tree of sections and
// provides a line-oriented parser and serializer for it. A document is a
// sequence of `=headN` sections; body text between directives is grouped
// into blank-line separated paragraphs.
package pod

// Document is a parsed documentation tree.
type Document struct {
	// Preamble holds paragraphs that appear before the first section.
	Preamble []string
	// Sections holds the top-level (=head1) sections in document order.
	Sections []*Section
}

// Section is one documentation section, possibly with nested subsections.
type Section struct {
	Level    int    // heading level, 1..4
	Title    string // heading text, may be empty
	Body     []string
	Children []*Section
}

// IsEmpty reports whether the document has no content at all.
func (d *Document) IsEmpty() bool {
	return len(d.Preamble) == 0 && len(d.Sections) == 0
}

// Section returns the first top-level section with the given title, or nil.
func (d *Document) Section(title string) *Section {
	for _, s := range d.Sections {
		if s.Title == title {
			return s
		}
	}
	return nil
}
