package rules

import (
	"bytes"
	"fmt"

	"github.com/adrg/frontmatter"

	"github.com/arthur-debert/rulecast/pkg/errors"
)

// Parse reads one raw rule document into a RuleFile. A document without a
// front-matter block yields an empty (non-nil) front-matter map. Malformed
// front-matter is an error; it is not recovered per-file.
func Parse(filename string, raw []byte) (*RuleFile, error) {
	var fm map[string]any
	body, err := frontmatter.Parse(bytes.NewReader(raw), &fm)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrRuleParse, "malformed front-matter in %s", filename)
	}
	if fm == nil {
		fm = map[string]any{}
	}

	// The decoder produces map[interface{}]interface{} for nested mappings.
	// Provider override blocks are looked up as map[string]any, so every
	// nested mapping is converted before the front-matter leaves this package.
	for k, v := range fm {
		fm[k] = normalizeValue(v)
	}

	return &RuleFile{
		Filename:    filename,
		FrontMatter: fm,
		Content:     string(body),
	}, nil
}

func normalizeValue(v any) any {
	switch val := v.(type) {
	case map[interface{}]interface{}:
		m := make(map[string]any, len(val))
		for k, inner := range val {
			m[fmt.Sprint(k)] = normalizeValue(inner)
		}
		return m
	case map[string]any:
		for k, inner := range val {
			val[k] = normalizeValue(inner)
		}
		return val
	case []any:
		for i, inner := range val {
			val[i] = normalizeValue(inner)
		}
		return val
	default:
		return v
	}
}
