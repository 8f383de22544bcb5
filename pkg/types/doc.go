// Package types holds the small set of types shared across rulecast
// packages, most importantly the FS abstraction that keeps rule discovery
// and provider output testable.
package types
