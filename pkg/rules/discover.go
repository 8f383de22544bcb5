package rules

import (
	"path"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/arthur-debert/rulecast/pkg/errors"
	"github.com/arthur-debert/rulecast/pkg/logging"
	"github.com/arthur-debert/rulecast/pkg/types"
)

// DefaultPattern matches top-level markdown documents.
const DefaultPattern = "*.md"

// Discover walks dir and returns the slash-separated relative paths of all
// files matching pattern, in walk order. Dot-directories are skipped so a
// provider output tree nested inside the rules directory is never picked up
// as input. The same relative path never appears twice.
func Discover(fsys types.FS, dir, pattern string) ([]string, error) {
	if pattern == "" {
		pattern = DefaultPattern
	}
	if !doublestar.ValidatePattern(pattern) {
		return nil, errors.Newf(errors.ErrInvalidPattern, "invalid file pattern %q", pattern)
	}

	logger := logging.GetLogger("rules.discover")

	var files []string
	seen := make(map[string]struct{})

	var walk func(rel string) error
	walk = func(rel string) error {
		entries, err := fsys.ReadDir(filepath.Join(dir, filepath.FromSlash(rel)))
		if err != nil {
			return errors.Wrapf(err, errors.ErrRuleRead, "cannot read directory %s", path.Join(dir, rel))
		}

		for _, entry := range entries {
			name := entry.Name()
			if entry.IsDir() {
				if strings.HasPrefix(name, ".") {
					continue
				}
				if err := walk(path.Join(rel, name)); err != nil {
					return err
				}
				continue
			}
			if name == ".DS_Store" {
				continue
			}

			relPath := path.Join(rel, name)
			matched, err := doublestar.Match(pattern, relPath)
			if err != nil {
				return errors.Wrapf(err, errors.ErrInvalidPattern, "matching %s against %q", relPath, pattern)
			}
			if !matched {
				continue
			}
			if _, dup := seen[relPath]; dup {
				continue
			}
			seen[relPath] = struct{}{}
			files = append(files, relPath)
		}
		return nil
	}

	if err := walk(""); err != nil {
		return nil, err
	}

	logger.Debug().
		Str("dir", dir).
		Str("pattern", pattern).
		Int("count", len(files)).
		Msg("Rule discovery complete")

	return files, nil
}
