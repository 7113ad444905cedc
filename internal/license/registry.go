// Package license resolves license identifiers to concrete license objects
// used by the weaving pipeline to emit copyright notices.
package license

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// License is a resolved license declaration.
type License struct {
	Name   string // registry identifier, e.g. "Perl_5"
	Terms  string // phrase completing "under ..." in the notice
	Holder string // declared rights-holder
	Year   int
}

// NotFoundError reports an identifier unknown to the registry.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("unknown license %q", e.Name)
}

// registry maps identifiers to the licensing terms phrase used in the
// generated notice.
var registry = map[string]string{
	"Perl_5":       "the same terms as the Perl 5 programming language system itself",
	"Artistic_1_0": "the Artistic License 1.0",
	"Artistic_2_0": "the Artistic License 2.0",
	"MIT":          "the MIT (X11) license",
	"BSD":          "the three-clause BSD license",
	"Apache_2_0":   "the Apache License, Version 2.0",
	"GPL_1":        "the GNU General Public License, Version 1",
	"GPL_2":        "the GNU General Public License, Version 2",
	"GPL_3":        "the GNU General Public License, Version 3",
	"LGPL_2_1":     "the GNU Lesser General Public License, Version 2.1",
	"LGPL_3_0":     "the GNU Lesser General Public License, Version 3.0",
	"MPL_2_0":      "the Mozilla Public License, Version 2.0",
	"Zlib":         "the zlib license",
}

// Resolve looks an identifier up in the registry, falling back to a
// normalized direct load (case and punctuation insensitive, so "perl-5" and
// "apache 2.0" resolve too). Both failing yields a *NotFoundError.
func Resolve(name, holder string) (*License, error) {
	if holder == "" {
		return nil, errors.New("license holder required")
	}
	terms, ok := registry[name]
	if !ok {
		terms, ok = load(name)
	}
	if !ok {
		return nil, &NotFoundError{Name: name}
	}
	return &License{
		Name:   name,
		Terms:  terms,
		Holder: holder,
		Year:   time.Now().Year(),
	}, nil
}

// load attempts a direct load by normalized identifier.
func load(name string) (string, bool) {
	want := normalize(name)
	for id, terms := range registry {
		if normalize(id) == want {
			return terms, true
		}
	}
	return "", false
}

func normalize(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Notice renders the copyright and licensing statement woven into the
// COPYRIGHT AND LICENSE section.
func (l *License) Notice() string {
	return fmt.Sprintf(
		"This software is copyright (c) %d by %s.\n\nThis is free software; you can redistribute it and/or modify it under %s.",
		l.Year, l.Holder, l.Terms,
	)
}
