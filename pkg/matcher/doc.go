// Package matcher answers which rule files apply to a project file.
//
// A rule applies when it is always applied or when one of its comma separated
// globs matches the file path relative to the project root. Globs use
// doublestar syntax; a glob without a slash also matches the base name, so
// "*.ts" covers "src/app.ts". Project ignore files (.gitignore,
// .builderignore) are reported alongside so users can tell why an agent may
// never look at a file. DefaultIgnorePatterns cover build output and credential
// files even when the project ignore files miss them.
package matcher
