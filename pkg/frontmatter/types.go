package frontmatter

// ApplyMode tells whether a rule is always loaded or left to the agent
type ApplyMode int

const (
	// ModeAgent lets the agent decide from the description or globs
	ModeAgent ApplyMode = iota
	// ModeAlways loads the rule unconditionally
	ModeAlways
)

// String returns the wire name of the mode
func (m ApplyMode) String() string {
	if m == ModeAlways {
		return "always"
	}
	return "agent-mode"
}

// MarshalText implements encoding.TextMarshaler
func (m ApplyMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// Frontmatter holds the recognized metadata of a rule file
type Frontmatter struct {
	Description string    `json:"description"`
	Glob        string    `json:"glob"`
	Mode        ApplyMode `json:"type"`
}

// Default returns the frontmatter used when nothing can be recovered
func Default() Frontmatter {
	return Frontmatter{Mode: ModeAgent}
}

const (
	// Delimiter opens and closes the frontmatter block
	Delimiter = "---"

	// RuleExtension is the default extension of rule files; config
	// rules.extension overrides it
	RuleExtension = ".mdc"

	keyDescription = "description"
	keyGlobs       = "globs"
	keyAlwaysApply = "alwaysApply"

	bodyJoin = " " + Delimiter + " "
)
