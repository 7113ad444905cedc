package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docloom/docloom/internal/syntax"
)

// Test Plan for extraction:
// - Fragments() returns documentation blocks in source order
// - Fragments() of a documentation-free file is empty, not an error
// - CodeNodes() includes literals and excludes comments and documentation
// - Detect() fires on a heredoc containing a directive line
// - Detect() fires on a multi-line string containing a directive line
// - Detect() fires on a quote-like literal containing a directive line
// - Detect() ignores directive-like text in comments and documentation
// - Detect() ignores literals whose directive-ish text is not at line start
// - Assemble() of no fragments yields a valid empty document
// - Assemble() preserves fragment order in the resulting tree

func parse(t *testing.T, source string) *syntax.Tree {
	t.Helper()
	tree, err := syntax.NewParser().Parse("test.rb", []byte(source))
	require.NoError(t, err)
	t.Cleanup(tree.Close)
	return tree
}

func TestFragments_SourceOrder(t *testing.T) {
	t.Parallel()

	tree := parse(t, `=begin
=head1 FIRST
=end
class Widget
end
=begin
=head1 SECOND
=end
`)

	fragments := Fragments(tree)
	require.Len(t, fragments, 2)
	assert.Contains(t, fragments[0].Text, "FIRST")
	assert.Contains(t, fragments[1].Text, "SECOND")
	assert.Less(t, fragments[0].Line, fragments[1].Line)
}

func TestFragments_NoDocumentation(t *testing.T) {
	t.Parallel()

	tree := parse(t, "class Widget\nend\n")
	assert.Empty(t, Fragments(tree))
}

func TestCodeNodes_ExcludesIgnorable(t *testing.T) {
	t.Parallel()

	tree := parse(t, `=begin
=head1 NAME
=end
# comment
x = "literal"
`)

	for _, n := range CodeNodes(tree) {
		kind := n.Kind()
		assert.NotEqual(t, syntax.KindComment, kind)
		assert.NotEqual(t, syntax.KindDocumentation, kind)
	}

	// Literals count as code.
	var sawQuote bool
	for _, n := range CodeNodes(tree) {
		if n.Kind() == syntax.KindQuote {
			sawQuote = true
		}
	}
	assert.True(t, sawQuote, "expected a literal among the code nodes")
}

func TestDetect_HeredocContamination(t *testing.T) {
	t.Parallel()

	tree := parse(t, `text = <<DOC
=head1 NAME
DOC
`)
	assert.True(t, Detect(tree))
}

func TestDetect_MultilineStringContamination(t *testing.T) {
	t.Parallel()

	tree := parse(t, "text = \"\n=head1 NAME\n\"\n")
	assert.True(t, Detect(tree))
}

func TestDetect_QuoteLikeContamination(t *testing.T) {
	t.Parallel()

	tree := parse(t, "words = %w(\n=head1\n)\n")
	assert.True(t, Detect(tree))
}

func TestDetect_CleanFile(t *testing.T) {
	t.Parallel()

	tree := parse(t, `=begin
=head1 NAME
Widget - a thing
=end
# =head1 in a comment is fine
greeting = "hello world"
`)
	assert.False(t, Detect(tree))
}

func TestDetect_DirectiveNotAtLineStart(t *testing.T) {
	t.Parallel()

	tree := parse(t, "text = \"see =head1 for details\"\n")
	assert.False(t, Detect(tree))
}

func TestAssemble_Empty(t *testing.T) {
	t.Parallel()

	doc := Assemble(nil)
	require.NotNil(t, doc)
	assert.True(t, doc.IsEmpty())
}

func TestAssemble_PreservesOrder(t *testing.T) {
	t.Parallel()

	doc := Assemble([]Fragment{
		{Text: "=head1 A", Line: 1},
		{Text: "=head1 B", Line: 10},
	})

	require.Len(t, doc.Sections, 2)
	assert.Equal(t, "A", doc.Sections[0].Title)
	assert.Equal(t, "B", doc.Sections[1].Title)
}
