// Package pipeline orchestrates the per-file processing chain: read, decode,
// parse, screen for contaminated literals, extract, assemble, weave.
package pipeline

import (
	"fmt"
	"os"

	"github.com/docloom/docloom/internal/extract"
	"github.com/docloom/docloom/internal/pod"
	"github.com/docloom/docloom/internal/syntax"
	"github.com/docloom/docloom/internal/weaver"
)

// Result is the outcome of processing one file. Exactly one of the two
// shapes occurs without error: woven text, or a rejection with a warning.
// Rejection is recoverable; callers continue with the next file. Errors are
// fatal and abort the whole run.
type Result struct {
	Text     string
	Rejected bool
	Warning  string
}

// WeaveError reports a transformation-engine failure for one file.
type WeaveError struct {
	Path string
	Err  error
}

func (e *WeaveError) Error() string {
	return fmt.Sprintf("weaving %s failed: %v", e.Path, e.Err)
}

func (e *WeaveError) Unwrap() error {
	return e.Err
}

// Weaver is the transformation engine the pipeline hands assembled
// documentation to. Satisfied by *weaver.Weaver.
type Weaver interface {
	Weave(doc *pod.Document, tree *syntax.Tree, meta weaver.Metadata) (*pod.Document, error)
}

// Pipeline processes input files strictly sequentially. It holds no state
// across files; the metadata is read-only.
type Pipeline struct {
	parser *syntax.Parser
	weaver Weaver
	meta   weaver.Metadata
}

// New creates a pipeline around a configured weaver and invocation metadata.
func New(w Weaver, meta weaver.Metadata) *Pipeline {
	return &Pipeline{
		parser: syntax.NewParser(),
		weaver: w,
		meta:   meta,
	}
}

// ProcessFile reads and processes one file.
func (p *Pipeline) ProcessFile(path string) (Result, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("reading %s: %w", path, err)
	}
	return p.Process(path, source)
}

// Process runs the per-file chain over in-memory source. Decode and parse
// failures surface as *syntax.DecodingError and *syntax.ParseError; a
// contaminated literal yields a rejected Result and nil error; a weaving
// failure surfaces as *WeaveError.
func (p *Pipeline) Process(path string, source []byte) (Result, error) {
	tree, err := p.parser.Parse(path, source)
	if err != nil {
		return Result{}, err
	}
	defer tree.Close()

	if extract.Detect(tree) {
		return Result{
			Rejected: true,
			Warning:  fmt.Sprintf("%s: documentation-like text inside a string or heredoc literal, skipping", path),
		}, nil
	}

	doc := extract.Assemble(extract.Fragments(tree))

	woven, err := p.weaver.Weave(doc, tree, p.meta)
	if err != nil {
		return Result{}, &WeaveError{Path: path, Err: err}
	}

	return Result{Text: pod.Serialize(woven)}, nil
}
