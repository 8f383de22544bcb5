package providers

import (
	"sort"
	"strings"
	"sync"
)

// SectionBuffer accumulates the per-rule sections of an aggregate provider.
// Handle calls for different rules may run concurrently, so sections are
// keyed by source filename behind a mutex and serialized only at Finish,
// sorted by filename. This makes the final document deterministic no matter
// which Handle completed first.
type SectionBuffer struct {
	mu       sync.Mutex
	sections map[string]string
}

// Reset discards all accumulated sections
func (b *SectionBuffer) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.sections = make(map[string]string)
}

// Add records the section for one rule: a "## " heading, a blank line, and
// the trimmed body.
func (b *SectionBuffer) Add(filename, title, body string) {
	section := "## " + title + "\n\n" + strings.TrimSpace(body)

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.sections == nil {
		b.sections = make(map[string]string)
	}
	b.sections[filename] = section
}

// Len reports the number of accumulated sections
func (b *SectionBuffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.sections)
}

// Render serializes the buffer: sections sorted by filename, separated by
// exactly one blank line, leading whitespace trimmed, and exactly one
// trailing newline. An empty buffer renders as a single newline.
func (b *SectionBuffer) Render() []byte {
	b.mu.Lock()
	defer b.mu.Unlock()

	filenames := make([]string, 0, len(b.sections))
	for f := range b.sections {
		filenames = append(filenames, f)
	}
	sort.Strings(filenames)

	parts := make([]string, 0, len(filenames))
	for _, f := range filenames {
		parts = append(parts, b.sections[f])
	}

	out := strings.TrimLeft(strings.Join(parts, "\n\n"), " \t\r\n")
	out = strings.TrimRight(out, "\n") + "\n"
	return []byte(out)
}
