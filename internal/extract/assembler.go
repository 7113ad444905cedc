package extract

import (
	"strings"

	"github.com/docloom/docloom/internal/pod"
)

// Assemble joins documentation fragments with a newline separator, in order,
// and parses the result into a documentation tree. Fragment text is passed
// through untouched; rewriting is the weaving engine's job. An empty fragment
// list produces a valid empty document.
func Assemble(fragments []Fragment) *pod.Document {
	parts := make([]string, len(fragments))
	for i, f := range fragments {
		parts[i] = f.Text
	}
	return pod.Parse(strings.Join(parts, "\n"))
}
