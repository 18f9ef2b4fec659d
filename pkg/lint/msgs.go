package lint

// Advice texts
const (
	MsgMisnamedAgents       = "Found agent.md file. Did you mean agents.md?"
	MsgMisnamedBuilderRules = "Found builderrules file. Did you mean .builderrules?"
	MsgMisspeltBuilderRules = "Found .builderules file. Did you mean .builderrules?"
	MsgLegacyRulesFolder    = "Found .agents/rules folder. This folder will not be found by Fusion for rules. Use .builder/rules instead."
	MsgRootUnreadable       = "Error with rules file."

	MsgWrongExtension     = "%s does not have a %s file extension. Is this file intended to be in the rules folder?"
	MsgMissingDescription = "%s is missing a description in the frontmatter. Consider adding a description so that this rule can conditionally apply."
	MsgAlwaysWithoutGlobs = "%s is marked as alwaysApply but is missing globs in the frontmatter. Consider adding globs to specify which files this rule should apply to, or removing alwaysApply."
	MsgRuleTooLong        = "%s has %d lines. Reduce to below %d lines to avoid the AI ignoring some rules."
	MsgRuleLong           = "%s has %d lines. Consider reducing below %d to avoid the AI ignoring some rules."

	MsgTooManyAlways   = "You have %d rules files marked as alwaysApply. This is the same as adding to %s but with unsorted precendence. Consider limiting use of alwaysApply."
	MsgRootTooLong     = "%s has %d lines. Consider reducing below %d to avoid the AI ignoring some rules."
	MsgTotalWithAlways = "Your rules files have a total of %d lines that are always applied. Consider removing alwaysApply from %s to reduce the line count below %d lines to avoid the AI ignoring some rules."
	MsgTotalRootOnly   = "Your rules files have a total of %d lines that are always applied. Consider reducing this below %d lines to avoid the AI ignoring some rules."
)

// LegacyRulesFolder is the folder name people try before .builder/rules
const LegacyRulesFolder = ".agents/rules"

// misnamedFile is a name people use when they mean one of the root rule files
type misnamedFile struct {
	name    string
	message string
}

var misnamedFiles = []misnamedFile{
	{"agent.md", MsgMisnamedAgents},
	{"builderrules", MsgMisnamedBuilderRules},
	{".builderules", MsgMisspeltBuilderRules},
}
