package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort    = "Check the AI agent rules of a project"
	MsgRulesShort   = "Lint the rules files of a project"
	MsgRulesLong    = "Rules reads the root rules file and the rules folders and reports problems, warnings and suggestions."
	MsgMatchShort   = "Show which rules apply to the given paths"
	MsgVersionShort = "Print version information"

	// Version output
	MsgVersionFormat = "builder-doctor version %s\n"
	MsgCommitFormat  = "Commit: %s\n"
	MsgBuiltFormat   = "Built:  %s\n"

	// Error messages
	MsgErrResolveDir = "failed to resolve project directory %s"
	MsgErrNotDir     = "project directory %s is not a directory"

	// Flag descriptions
	MsgFlagVerbosity = "Increase log verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagVerbose   = "Also print the scan result as JSON"
	MsgFlagDir       = "Project directory to check (default is the current directory)"
	MsgFlagColor     = "Color output: auto, always or never (default from config)"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/match-long.txt
	msgMatchLongRaw string
	MsgMatchLong    = strings.TrimSpace(msgMatchLongRaw)

	//go:embed msgs/match-example.txt
	msgMatchExampleRaw string
	MsgMatchExample    = strings.TrimRight(msgMatchExampleRaw, "\n")

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"
)
