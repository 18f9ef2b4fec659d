// Package frontmatter decodes the metadata block at the top of agent rule files.
//
// Rule files look like this:
//
//	---
//	description: Conventions for API handlers
//	globs: *.ts,*.js
//	alwaysApply: true
//	---
//	Body text the agent receives.
//
// The dialect is deliberately narrow. Keys are split on the first colon, only
// description, globs and alwaysApply are recognized, and values are never unquoted.
// Before splitting, the raw text is escaped into a double-quoted literal with line
// feeds restored, so quotes, tabs and carriage returns survive as escape sequences
// in the decoded values and body. Malformed input never fails: it degrades to the
// default frontmatter.
package frontmatter
