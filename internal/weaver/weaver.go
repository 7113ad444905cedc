// Package weaver transforms an extracted documentation tree into a
// publishable one. A configurable pipeline of plugins builds the output
// document section by section: boilerplate sections (NAME, VERSION, AUTHORS,
// COPYRIGHT AND LICENSE) are generated from metadata, and the sections
// already present in the input are spliced in where the pipeline says so.
package weaver

import (
	"fmt"

	"github.com/docloom/docloom/internal/config"
	"github.com/docloom/docloom/internal/license"
	"github.com/docloom/docloom/internal/pod"
	"github.com/docloom/docloom/internal/syntax"
)

// Metadata carries the per-invocation inputs to boilerplate plugins. It is
// built once from command-line input and read-only afterwards.
type Metadata struct {
	Version string
	Authors []string // ordered; the first entry is the license holder
	License *license.License
}

// Weaver runs a fixed plugin pipeline over documentation trees.
type Weaver struct {
	plugins []Plugin
}

// New builds the pipeline named by the configuration, in configured order.
// An unknown plugin name is a configuration error.
func New(cfg *config.Config) (*Weaver, error) {
	plugins := make([]Plugin, 0, len(cfg.Plugins))
	for _, pc := range cfg.Plugins {
		ctor, ok := pluginRegistry[pc.Name]
		if !ok {
			return nil, fmt.Errorf("unknown weaver plugin %q", pc.Name)
		}
		plugins = append(plugins, ctor(pc.Options))
	}
	return &Weaver{plugins: plugins}, nil
}

// Weave produces a fresh output document from the input document, syntax
// tree and metadata. Inputs are not mutated; a plugin failure aborts the
// weave and surfaces the offending plugin.
func (w *Weaver) Weave(doc *pod.Document, tree *syntax.Tree, meta Metadata) (*pod.Document, error) {
	ctx := &Context{
		In:   doc,
		Out:  &pod.Document{},
		Tree: tree,
		Meta: meta,
		used: make(map[*pod.Section]bool),
	}
	for _, p := range w.plugins {
		if err := p.Weave(ctx); err != nil {
			return nil, fmt.Errorf("plugin %s: %w", p.Name(), err)
		}
	}
	return ctx.Out, nil
}

// Context is the shared state one weave passes through its plugins.
type Context struct {
	In   *pod.Document
	Out  *pod.Document
	Tree *syntax.Tree
	Meta Metadata

	used map[*pod.Section]bool
}

// Consume returns the first not-yet-consumed top-level input section with
// the given title and marks it consumed, or nil.
func (c *Context) Consume(title string) *pod.Section {
	for _, s := range c.In.Sections {
		if s.Title == title && !c.used[s] {
			c.used[s] = true
			return s
		}
	}
	return nil
}

// Remaining returns the not-yet-consumed top-level input sections in input
// order and marks them all consumed.
func (c *Context) Remaining() []*pod.Section {
	var out []*pod.Section
	for _, s := range c.In.Sections {
		if !c.used[s] {
			c.used[s] = true
			out = append(out, s)
		}
	}
	return out
}
