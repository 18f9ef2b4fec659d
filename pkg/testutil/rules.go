package testutil

import (
	"strings"
)

// RuleBuilder assembles rule file content
type RuleBuilder struct {
	description string
	globs       string
	alwaysApply string
	lines       int
}

// NewRule starts an empty rule without frontmatter keys
func NewRule() *RuleBuilder {
	return &RuleBuilder{}
}

// Description sets the description key
func (b *RuleBuilder) Description(d string) *RuleBuilder {
	b.description = d
	return b
}

// Globs sets the globs key
func (b *RuleBuilder) Globs(g string) *RuleBuilder {
	b.globs = g
	return b
}

// AlwaysApply sets alwaysApply to the literal value v
func (b *RuleBuilder) AlwaysApply(v string) *RuleBuilder {
	b.alwaysApply = v
	return b
}

// Lines pads the body so the whole file has n newline-separated lines
func (b *RuleBuilder) Lines(n int) *RuleBuilder {
	b.lines = n
	return b
}

// String renders the rule file
func (b *RuleBuilder) String() string {
	var sb strings.Builder
	sb.WriteString("---\n")
	if b.description != "" {
		sb.WriteString("description: " + b.description + "\n")
	}
	if b.globs != "" {
		sb.WriteString("globs: " + b.globs + "\n")
	}
	if b.alwaysApply != "" {
		sb.WriteString("alwaysApply: " + b.alwaysApply + "\n")
	}
	sb.WriteString("---\n")
	return PadLines(sb.String(), b.lines)
}

// PadLines appends filler lines to prefix until it has n lines. A prefix that
// already has n or more lines gets a single filler line without a newline.
func PadLines(prefix string, n int) string {
	missing := n - 1 - strings.Count(prefix, "\n")
	if missing < 0 {
		missing = 0
	}
	return prefix + strings.Repeat("- keep it short\n", missing) + "- keep it short"
}

// Text returns plain content with exactly n lines
func Text(n int) string {
	return PadLines("", n)
}
