// Package rules models rule documents: markdown files with optional YAML
// front-matter that carry agent-facing guidance. It covers reading one
// document (front-matter split from body) and discovering the set of
// documents under a rules directory with a glob pattern.
package rules
