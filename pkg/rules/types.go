package rules

// RuleFile is one parsed rule document. Filename is the path relative to
// the rules directory, slash separated, and is unique within one run.
// FrontMatter and Content are immutable for the duration of a run.
type RuleFile struct {
	Filename    string
	FrontMatter map[string]any
	Content     string
}
