package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docloom/docloom/internal/config"
	"github.com/docloom/docloom/internal/pod"
	"github.com/docloom/docloom/internal/syntax"
	"github.com/docloom/docloom/internal/weaver"
)

// Test Plan for the per-file pipeline:
// - a clean file weaves exactly once and yields serialized text
// - a contaminated file yields a rejected result with a warning naming the
//   file, nil error, and never reaches the weaver
// - a code-only file still weaves (empty documentation tree plus metadata)
// - invalid UTF-8 surfaces as *syntax.DecodingError
// - malformed source surfaces as *syntax.ParseError
// - a weaver failure surfaces as *WeaveError carrying the file path

// countingWeaver wraps the real engine and counts invocations.
type countingWeaver struct {
	inner *weaver.Weaver
	calls int
}

func (c *countingWeaver) Weave(doc *pod.Document, tree *syntax.Tree, meta weaver.Metadata) (*pod.Document, error) {
	c.calls++
	return c.inner.Weave(doc, tree, meta)
}

// failingWeaver always fails.
type failingWeaver struct{}

func (failingWeaver) Weave(doc *pod.Document, tree *syntax.Tree, meta weaver.Metadata) (*pod.Document, error) {
	return nil, assert.AnError
}

func defaultWeaver(t *testing.T) *weaver.Weaver {
	t.Helper()
	w, err := weaver.New(config.Default())
	require.NoError(t, err)
	return w
}

func TestProcess_CleanFile(t *testing.T) {
	t.Parallel()

	counting := &countingWeaver{inner: defaultWeaver(t)}
	p := New(counting, weaver.Metadata{})

	result, err := p.Process("widget.rb", []byte(`=begin
=head1 NAME
Widget - a thing
=end
class Widget
end
`))
	require.NoError(t, err)

	assert.False(t, result.Rejected)
	assert.Equal(t, 1, counting.calls)
	assert.Contains(t, result.Text, "=head1 NAME")
	assert.Contains(t, result.Text, "Widget - a thing")
}

func TestProcess_ContaminatedFile(t *testing.T) {
	t.Parallel()

	counting := &countingWeaver{inner: defaultWeaver(t)}
	p := New(counting, weaver.Metadata{})

	result, err := p.Process("tainted.rb", []byte(`text = <<DOC
=head1 NAME
DOC
`))
	require.NoError(t, err)

	assert.True(t, result.Rejected)
	assert.Empty(t, result.Text)
	assert.Contains(t, result.Warning, "tainted.rb")
	assert.Equal(t, 0, counting.calls, "contaminated files must not reach the weaver")
}

func TestProcess_CodeOnlyFile(t *testing.T) {
	t.Parallel()

	p := New(defaultWeaver(t), weaver.Metadata{Version: "1.0"})

	result, err := p.Process("plain.rb", []byte("class Plain\nend\n"))
	require.NoError(t, err)

	assert.False(t, result.Rejected)
	assert.Contains(t, result.Text, "=head1 VERSION")
	assert.Contains(t, result.Text, "version 1.0")
	assert.Contains(t, result.Text, "Plain - no description")
}

func TestProcess_InvalidUTF8(t *testing.T) {
	t.Parallel()

	p := New(defaultWeaver(t), weaver.Metadata{})

	_, err := p.Process("bad.rb", []byte{0xff, 0xfe})
	var decErr *syntax.DecodingError
	require.ErrorAs(t, err, &decErr)
}

func TestProcess_MalformedSource(t *testing.T) {
	t.Parallel()

	p := New(defaultWeaver(t), weaver.Metadata{})

	_, err := p.Process("broken.rb", []byte("def foo(\n"))
	var parseErr *syntax.ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestProcess_WeaveFailure(t *testing.T) {
	t.Parallel()

	p := New(failingWeaver{}, weaver.Metadata{})

	_, err := p.Process("widget.rb", []byte("x = 1\n"))
	var weaveErr *WeaveError
	require.ErrorAs(t, err, &weaveErr)
	assert.Equal(t, "widget.rb", weaveErr.Path)
	assert.ErrorIs(t, err, assert.AnError)
}
