package pod

import (
	"regexp"
	"strings"
)

var headingRe = regexp.MustCompile(`^=head([1-4])(?:\s+(.*))?$`)

// Parse builds a Document from raw documentation text. It never fails: empty
// or directive-free input yields a valid (possibly empty) document.
//
// Recognized lines:
//   - `=headN title` opens a section at level N (nested under the closest
//     open section of a lower level);
//   - `=cut` terminates the document, everything after it is ignored;
//   - `=begin` and `=end` lines are the markers that delimited the block in
//     the source file and carry no content, they are skipped;
//   - anything else is body text, grouped into paragraphs on blank lines.
func Parse(text string) *Document {
	doc := &Document{}
	var open []*Section // currently open sections, outermost first
	var para []string

	flush := func() {
		if len(para) == 0 {
			return
		}
		p := strings.Join(para, "\n")
		para = nil
		if len(open) == 0 {
			doc.Preamble = append(doc.Preamble, p)
			return
		}
		cur := open[len(open)-1]
		cur.Body = append(cur.Body, p)
	}

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimRight(line, " \t\r")
		switch {
		case trimmed == "=cut" || strings.HasPrefix(trimmed, "=cut "):
			flush()
			return doc
		case trimmed == "=begin" || strings.HasPrefix(trimmed, "=begin "),
			trimmed == "=end" || strings.HasPrefix(trimmed, "=end "):
			flush()
			continue
		case trimmed == "":
			flush()
			continue
		}

		if m := headingRe.FindStringSubmatch(trimmed); m != nil {
			flush()
			level := int(m[1][0] - '0')
			sec := &Section{Level: level, Title: strings.TrimSpace(m[2])}
			for len(open) > 0 && open[len(open)-1].Level >= level {
				open = open[:len(open)-1]
			}
			if len(open) == 0 {
				doc.Sections = append(doc.Sections, sec)
			} else {
				parent := open[len(open)-1]
				parent.Children = append(parent.Children, sec)
			}
			open = append(open, sec)
			continue
		}

		para = append(para, trimmed)
	}
	flush()
	return doc
}
