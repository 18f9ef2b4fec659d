// Package rules finds and reads the AI-agent rule files of a project.
//
// A project has at most one root rule file, agents.md or .builderrules, which the
// agent always loads. Additional rule files live under the rules folders
// (.cursor/rules and .builder/rules by default). Every regular file below a rules
// folder is read, whatever its extension; the lint package decides what to say
// about files that are not .mdc.
//
// When several rules folders exist, only the last one in the configured order is
// used. Earlier folders are walked and then discarded.
package rules
