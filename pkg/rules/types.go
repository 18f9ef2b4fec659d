package rules

import (
	"encoding/json"
	"path/filepath"
)

// Root rule file names, checked in this order
const (
	AgentsFile       = "agents.md"
	BuilderRulesFile = ".builderrules"
)

// DefaultRuleFolders are walked when no configuration is given
var DefaultRuleFolders = []string{".cursor/rules", ".builder/rules"}

// ApplyFlag records whether a rule file asked to be always applied.
// There is no explicit false: a rule either says alwaysApply: true or it does not.
type ApplyFlag int

const (
	// ApplyUnspecified covers a missing, false or malformed alwaysApply
	ApplyUnspecified ApplyFlag = iota
	// ApplyAlways is set only by alwaysApply: true
	ApplyAlways
)

// IsAlways reports whether the rule is always applied
func (a ApplyFlag) IsAlways() bool {
	return a == ApplyAlways
}

// MarshalJSON renders ApplyAlways as true. ApplyUnspecified is dropped by omitempty.
func (a ApplyFlag) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.IsAlways())
}

// RuleFile is a rule file read from disk
type RuleFile struct {
	// Path identifies the file; discovered rules carry absolute paths
	Path        string    `json:"filename"`
	Description string    `json:"description"`
	Globs       string    `json:"globs"`
	AlwaysApply ApplyFlag `json:"alwaysApply,omitempty"`
	// Body is the complete raw content, frontmatter included
	Body string `json:"body"`
	// Lines counts newline-separated segments of Body
	Lines int `json:"lines"`
}

// Name returns the base name of the file
func (r *RuleFile) Name() string {
	return filepath.Base(r.Path)
}

// Result is everything the linter needs to know about a project
type Result struct {
	HasBuilderRulesFile bool        `json:"hasBuilderRulesFile"`
	HasAgentsMd         bool        `json:"hasAgentsMd"`
	Rules               []*RuleFile `json:"rules"`
	RootRuleFile        *RuleFile   `json:"rootRuleFile,omitempty"`
}
