package syntax

import "bytes"

// NodeKind is the closed classification of syntax-tree nodes. Every node
// falls into exactly one kind.
type NodeKind int

const (
	KindCode NodeKind = iota
	KindComment
	KindDocumentation
	KindWhitespace
	KindSeparator
	KindEmbeddedData
	KindEndMarker
	KindQuote
	KindQuoteLike
	KindHereDoc
)

// String returns the kind name for diagnostics.
func (k NodeKind) String() string {
	switch k {
	case KindCode:
		return "code"
	case KindComment:
		return "comment"
	case KindDocumentation:
		return "documentation"
	case KindWhitespace:
		return "whitespace"
	case KindSeparator:
		return "separator"
	case KindEmbeddedData:
		return "embedded-data"
	case KindEndMarker:
		return "end-marker"
	case KindQuote:
		return "quote"
	case KindQuoteLike:
		return "quote-like"
	case KindHereDoc:
		return "heredoc"
	}
	return "unknown"
}

// IsCode reports whether nodes of this kind count as code for structural
// purposes. String and heredoc literals are code; comments, documentation,
// whitespace, separators and post-__END__ data are not.
func (k NodeKind) IsCode() bool {
	switch k {
	case KindComment, KindDocumentation, KindWhitespace, KindSeparator, KindEmbeddedData, KindEndMarker:
		return false
	}
	return true
}

// IsLiteral reports whether nodes of this kind are string-like literals
// whose text content must be screened for documentation-directive lines.
func (k NodeKind) IsLiteral() bool {
	return k == KindQuote || k == KindQuoteLike || k == KindHereDoc
}

// quoteKinds lists tree-sitter-ruby node types for plain string literals.
var quoteKinds = map[string]bool{
	"string":           true,
	"string_content":   true,
	"character":        true,
	"chained_string":   true,
	"delimited_symbol": true,
}

// quoteLikeKinds lists tree-sitter-ruby node types for quote-like operators
// (patterns, command strings, percent literals).
var quoteLikeKinds = map[string]bool{
	"regex":        true,
	"subshell":     true,
	"string_array": true,
	"symbol_array": true,
}

// hereDocKinds lists tree-sitter-ruby node types that make up here-documents.
var hereDocKinds = map[string]bool{
	"heredoc_beginning": true,
	"heredoc_body":      true,
	"heredoc_content":   true,
	"heredoc_end":       true,
}

// docPrefix marks an embedded documentation block. Ruby lexes both # line
// comments and =begin/=end blocks as comment tokens; only the latter are
// documentation.
var docPrefix = []byte("=begin")

// classify maps a raw tree-sitter node to a NodeKind. text is the node's
// source bytes; it is only inspected for comment and anonymous nodes.
func classify(rawKind string, named bool, text []byte) NodeKind {
	switch {
	case rawKind == "comment":
		if bytes.HasPrefix(text, docPrefix) {
			return KindDocumentation
		}
		return KindComment
	case rawKind == "uninterpreted":
		return KindEmbeddedData
	case quoteKinds[rawKind]:
		return KindQuote
	case quoteLikeKinds[rawKind]:
		return KindQuoteLike
	case hereDocKinds[rawKind]:
		return KindHereDoc
	}
	if !named {
		if rawKind == "__END__" {
			return KindEndMarker
		}
		if len(text) > 0 && len(bytes.TrimSpace(text)) == 0 {
			return KindWhitespace
		}
		return KindSeparator
	}
	return KindCode
}
