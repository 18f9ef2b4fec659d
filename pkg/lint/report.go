package lint

// Outcome tells how far the checks got
type Outcome int

const (
	// OutcomeComplete means every check ran
	OutcomeComplete Outcome = iota
	// OutcomeMisnamed means no root rule file exists; only misnamed files were checked
	OutcomeMisnamed
	// OutcomeRootUnreadable means the root rule file exists but could not be read
	OutcomeRootUnreadable
)

// String returns a short name for logs and JSON
func (o Outcome) String() string {
	switch o {
	case OutcomeMisnamed:
		return "misnamed"
	case OutcomeRootUnreadable:
		return "root-unreadable"
	default:
		return "complete"
	}
}

// MarshalText implements encoding.TextMarshaler
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// Report is the advice produced for one scan
type Report struct {
	Outcome  Outcome  `json:"outcome"`
	Problems []string `json:"problems"`
	Warnings []string `json:"warnings"`
	Infos    []string `json:"infos"`

	// RootPath is the root rule file relative to the project directory
	RootPath string `json:"rootPath,omitempty"`
	// RuleCount is the number of discovered rule files
	RuleCount int `json:"ruleCount"`
	// TotalLines is the root file plus every always-applied rule
	TotalLines int `json:"totalLines"`
}

// Empty reports whether the report carries no messages at all
func (r *Report) Empty() bool {
	return len(r.Problems) == 0 && len(r.Warnings) == 0 && len(r.Infos) == 0
}

func (r *Report) problem(msg string) { r.Problems = append(r.Problems, msg) }
func (r *Report) warn(msg string)    { r.Warnings = append(r.Warnings, msg) }
func (r *Report) info(msg string)    { r.Infos = append(r.Infos, msg) }
