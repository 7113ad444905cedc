package extract

import (
	"regexp"

	"github.com/docloom/docloom/internal/syntax"
)

// docDirectiveLine matches a line that begins with the documentation
// directive marker followed by a lowercase letter, anchored at the start of
// the text or immediately after a line break. Any lowercase letter counts;
// the check is deliberately conservative and does not try to distinguish
// real directive names from coincidental text.
var docDirectiveLine = regexp.MustCompile(`(?m)^=[a-z]`)

// Detect reports whether any string, quote-like or heredoc literal in the
// tree contains a documentation-directive line. Extraction from such a file
// would be ambiguous, so callers must skip the file when Detect fires.
// Short-circuits on the first match and has no side effects.
func Detect(tree *syntax.Tree) bool {
	found := false
	tree.Walk(func(n syntax.Node) bool {
		if found {
			return false
		}
		if n.Kind().IsLiteral() && docDirectiveLine.MatchString(n.Text()) {
			found = true
			return false
		}
		// Descend even into literals: a content child starts at position 0
		// of its own text, which the anchored pattern must see.
		return true
	})
	return found
}
