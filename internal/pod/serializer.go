package pod

import (
	"fmt"
	"strings"
)

// Serialize renders a document back to documentation text. An empty document
// serializes to the empty string. Paragraphs and headings are separated by
// blank lines; there is no trailing newline.
func Serialize(doc *Document) string {
	var blocks []string
	blocks = append(blocks, doc.Preamble...)
	for _, s := range doc.Sections {
		blocks = appendSection(blocks, s)
	}
	return strings.Join(blocks, "\n\n")
}

func appendSection(blocks []string, s *Section) []string {
	heading := fmt.Sprintf("=head%d", s.Level)
	if s.Title != "" {
		heading += " " + s.Title
	}
	blocks = append(blocks, heading)
	blocks = append(blocks, s.Body...)
	for _, child := range s.Children {
		blocks = appendSection(blocks, child)
	}
	return blocks
}
