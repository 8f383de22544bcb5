package providers

// EffectiveFrontMatter produces a provider-local view of a rule's
// front-matter: the provider's own namespaced block (a sub-map keyed by the
// provider id) is shallow-merged over the top-level keys, block winning
// key-for-key, and the consumed block itself is dropped. Blocks namespaced
// to other providers pass through verbatim.
func EffectiveFrontMatter(fm map[string]any, providerID string) map[string]any {
	effective := make(map[string]any, len(fm))
	for k, v := range fm {
		if k == providerID {
			continue
		}
		effective[k] = v
	}

	block, ok := fm[providerID].(map[string]any)
	if !ok {
		return effective
	}
	for k, v := range block {
		effective[k] = v
	}
	return effective
}

// SectionTitle resolves the heading an aggregate provider uses for one rule:
// the provider-local title, else the provider-local description, else the
// "Untitled" placeholder. With no override block in play this is exactly
// title, then description, then the placeholder.
func SectionTitle(fm map[string]any, providerID string) string {
	effective := EffectiveFrontMatter(fm, providerID)

	if title, ok := effective["title"].(string); ok && title != "" {
		return title
	}
	if desc, ok := effective["description"].(string); ok && desc != "" {
		return desc
	}
	return "Untitled"
}
