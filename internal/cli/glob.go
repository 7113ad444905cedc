package cli

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gobwas/glob"
)

// expandArgs resolves each file argument in order. Literal paths pass
// through untouched; arguments with glob metacharacters are matched against
// the files under root, sorted. A pattern matching nothing is an error to
// keep output positionally aligned with the arguments.
func expandArgs(args []string, root string) ([]string, error) {
	var out []string
	for _, arg := range args {
		if !strings.ContainsAny(arg, "*?[{") {
			out = append(out, arg)
			continue
		}

		g, err := glob.Compile(arg, '/')
		if err != nil {
			return nil, fmt.Errorf("bad file pattern %q: %w", arg, err)
		}

		var matches []string
		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			rel, err := filepath.Rel(root, path)
			if err != nil {
				return err
			}
			if g.Match(filepath.ToSlash(rel)) {
				matches = append(matches, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("expanding %q: %w", arg, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("file pattern %q matched no files", arg)
		}
		sort.Strings(matches)
		out = append(out, matches...)
	}
	return out, nil
}
