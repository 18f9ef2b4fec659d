// Package testutil provides utilities for testing builder-doctor components.
//
// Key components:
//   - TestEnvironment: a project tree on an in-memory or temp-dir filesystem
//   - RuleBuilder: builds rule file content with a given frontmatter and line count
//
// Usage guidelines:
//   - Prefer EnvMemoryOnly; use EnvIsolated only when code reads the real disk
//   - All test data should be defined inline, not in external files
package testutil
