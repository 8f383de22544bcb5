package providers

import (
	"strings"
)

// Reserved front-matter keys controlling which providers process a rule.
// They are routing metadata, not rule content, and are stripped before the
// front-matter reaches any provider.
const (
	IncludeDirective = "_includeOnlyForProviders"
	ExcludeDirective = "_excludeForProviders"
)

// SelectForRule returns the subset of active providers that must process a
// rule with the given front-matter. A non-empty include directive is the
// sole source of truth; otherwise the exclude directive subtracts from the
// active set; otherwise the active set is returned unchanged. Ids that name
// no active provider are silently ignored. The filter has no memory across
// rules.
func SelectForRule(active []Provider, fm map[string]any) []Provider {
	include := splitIDs(fm[IncludeDirective])
	if len(include) > 0 {
		var subset []Provider
		for _, p := range active {
			if contains(include, p.ID()) {
				subset = append(subset, p)
			}
		}
		return subset
	}

	exclude := splitIDs(fm[ExcludeDirective])
	if len(exclude) > 0 {
		var subset []Provider
		for _, p := range active {
			if !contains(exclude, p.ID()) {
				subset = append(subset, p)
			}
		}
		return subset
	}

	return active
}

// StripDirectives returns a copy of fm without the two routing keys. All
// other keys, including nested per-provider override blocks, are left
// untouched. Applying it twice yields the same mapping as applying it once.
func StripDirectives(fm map[string]any) map[string]any {
	cleaned := make(map[string]any, len(fm))
	for k, v := range fm {
		if k == IncludeDirective || k == ExcludeDirective {
			continue
		}
		cleaned[k] = v
	}
	return cleaned
}

// splitIDs parses a comma-separated directive value into trimmed, non-empty
// ids. Anything that is not a string degrades silently to no ids.
func splitIDs(v any) []string {
	s, ok := v.(string)
	if !ok {
		return nil
	}

	var ids []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			ids = append(ids, part)
		}
	}
	return ids
}

func contains(ids []string, id string) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}
