package weaver

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/docloom/docloom/internal/pod"
)

// Plugin contributes sections to the output document.
type Plugin interface {
	Name() string
	Weave(ctx *Context) error
}

// pluginRegistry maps config names to plugin constructors.
var pluginRegistry = map[string]func(opts map[string]string) Plugin{
	"name":      func(opts map[string]string) Plugin { return &namePlugin{} },
	"version":   func(opts map[string]string) Plugin { return &versionPlugin{format: opts["format"]} },
	"leftovers": func(opts map[string]string) Plugin { return &leftoversPlugin{} },
	"authors":   func(opts map[string]string) Plugin { return &authorsPlugin{header: opts["header"]} },
	"license":   func(opts map[string]string) Plugin { return &licensePlugin{} },
}

// namePlugin emits the NAME section. The source document's own NAME section
// wins; otherwise the name is derived from the first class or module in the
// syntax tree, falling back to the file basename, with the first preamble
// paragraph as the description.
type namePlugin struct{}

func (p *namePlugin) Name() string { return "name" }

func (p *namePlugin) Weave(ctx *Context) error {
	if s := ctx.Consume("NAME"); s != nil {
		appendSection(ctx, "NAME", s.Body...)
		return nil
	}

	name := ctx.Tree.FirstDefinitionName()
	if name == "" {
		base := filepath.Base(ctx.Tree.Path())
		name = strings.TrimSuffix(base, filepath.Ext(base))
	}

	desc := "no description"
	if len(ctx.In.Preamble) > 0 {
		if first, _, _ := strings.Cut(ctx.In.Preamble[0], "\n"); first != "" {
			desc = first
		}
	}

	appendSection(ctx, "NAME", name+" - "+desc)
	return nil
}

// versionPlugin emits the VERSION section from metadata. Skipped when no
// version was supplied.
type versionPlugin struct {
	format string // fmt template with one %s verb, default "version %s"
}

func (p *versionPlugin) Name() string { return "version" }

func (p *versionPlugin) Weave(ctx *Context) error {
	if ctx.Meta.Version == "" {
		return nil
	}
	format := p.format
	if format == "" {
		format = "version %s"
	}
	appendSection(ctx, "VERSION", fmt.Sprintf(format, ctx.Meta.Version))
	return nil
}

// leftoversPlugin splices every input section no earlier plugin consumed,
// preserving input order.
type leftoversPlugin struct{}

func (p *leftoversPlugin) Name() string { return "leftovers" }

func (p *leftoversPlugin) Weave(ctx *Context) error {
	for _, s := range ctx.Remaining() {
		ctx.Out.Sections = append(ctx.Out.Sections, copySection(s))
	}
	return nil
}

// authorsPlugin emits AUTHOR or AUTHORS from metadata, one line per author.
// Skipped when the author list is empty.
type authorsPlugin struct {
	header string // override for the section title
}

func (p *authorsPlugin) Name() string { return "authors" }

func (p *authorsPlugin) Weave(ctx *Context) error {
	if len(ctx.Meta.Authors) == 0 {
		return nil
	}
	header := p.header
	if header == "" {
		header = "AUTHORS"
		if len(ctx.Meta.Authors) == 1 {
			header = "AUTHOR"
		}
	}
	appendSection(ctx, header, strings.Join(ctx.Meta.Authors, "\n"))
	return nil
}

// licensePlugin emits the COPYRIGHT AND LICENSE section with the resolved
// license's notice. Skipped when no license was requested.
type licensePlugin struct{}

func (p *licensePlugin) Name() string { return "license" }

func (p *licensePlugin) Weave(ctx *Context) error {
	if ctx.Meta.License == nil {
		return nil
	}
	paragraphs := strings.Split(ctx.Meta.License.Notice(), "\n\n")
	appendSection(ctx, "COPYRIGHT AND LICENSE", paragraphs...)
	return nil
}

func appendSection(ctx *Context, title string, body ...string) {
	ctx.Out.Sections = append(ctx.Out.Sections, &pod.Section{
		Level: 1,
		Title: title,
		Body:  body,
	})
}

func copySection(s *pod.Section) *pod.Section {
	out := &pod.Section{
		Level: s.Level,
		Title: s.Title,
		Body:  append([]string(nil), s.Body...),
	}
	for _, child := range s.Children {
		out.Children = append(out.Children, copySection(child))
	}
	return out
}
