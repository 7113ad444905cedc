// Package syntax parses Ruby source into a read-only tree of classified
// nodes. Classification is a closed enumeration over the grammar's node
// kinds, separating documentation and other ignorable nodes from code and
// from the string-like literals that must be screened before extraction.
package syntax

import (
	"fmt"
	"unicode/utf8"

	sitter "github.com/tree-sitter/go-tree-sitter"
	ruby "github.com/tree-sitter/tree-sitter-ruby/bindings/go"
)

// DecodingError reports source bytes that are not valid UTF-8.
type DecodingError struct {
	Path string
}

func (e *DecodingError) Error() string {
	return fmt.Sprintf("%s: source is not valid UTF-8", e.Path)
}

// ParseError reports source that could not be parsed into a syntax tree.
type ParseError struct {
	Path string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: source could not be parsed", e.Path)
}

// Parser parses Ruby source files into syntax trees.
type Parser struct {
	language *sitter.Language
}

// NewParser creates a parser for Ruby source.
func NewParser() *Parser {
	return &Parser{language: sitter.NewLanguage(ruby.Language())}
}

// Parse builds a syntax tree from source. The returned Tree owns the
// underlying tree-sitter tree; callers must Close it. Invalid UTF-8 yields a
// *DecodingError and malformed source a *ParseError; no partial tree is
// returned in either case.
func (p *Parser) Parse(path string, source []byte) (*Tree, error) {
	if !utf8.Valid(source) {
		return nil, &DecodingError{Path: path}
	}

	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(p.language)

	tree := parser.Parse(source, nil)
	if tree == nil {
		return nil, &ParseError{Path: path}
	}
	if tree.RootNode().HasError() {
		tree.Close()
		return nil, &ParseError{Path: path}
	}

	return &Tree{tree: tree, source: source, path: path}, nil
}
