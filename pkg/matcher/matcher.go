package matcher

import (
	"path/filepath"
	"strings"

	doctorerrors "github.com/arthur-debert/builder-doctor/pkg/errors"
	"github.com/arthur-debert/builder-doctor/pkg/logging"
	"github.com/arthur-debert/builder-doctor/pkg/rules"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// ReasonAlways marks rules that apply because of alwaysApply
const ReasonAlways = "alwaysApply"

// Applied is a rule that applies to a path and why
type Applied struct {
	Rule *rules.RuleFile `json:"-"`
	Name string          `json:"rule"`
	// Reason is ReasonAlways or the glob that matched
	Reason string `json:"reason"`
}

// Match is the outcome for one path
type Match struct {
	// Path is relative to the project root, slash separated
	Path string `json:"path"`
	// IgnoredBy names the ignore file excluding the path, BuiltinIgnore when
	// only DefaultIgnorePatterns do, or is empty
	IgnoredBy string    `json:"ignoredBy,omitempty"`
	Rules     []Applied `json:"rules"`
}

// Ignored reports whether an ignore file or a built-in pattern excludes the path
func (m Match) Ignored() bool {
	return m.IgnoredBy != ""
}

// Matcher matches project paths against a set of rule files
type Matcher struct {
	fs      afero.Fs
	root    string
	rules   []*rules.RuleFile
	ignores []*ignoreFile
	invalid []error
	logger  zerolog.Logger
}

// New creates a matcher for ruleFiles. ignoreFiles are names relative to root;
// missing ones are skipped.
func New(fs afero.Fs, root string, ruleFiles []*rules.RuleFile, ignoreFiles []string) *Matcher {
	m := &Matcher{
		fs:     fs,
		root:   root,
		rules:  ruleFiles,
		logger: logging.GetLogger("matcher"),
	}

	for _, name := range ignoreFiles {
		if f := loadIgnoreFile(fs, root, name); f != nil {
			m.ignores = append(m.ignores, f)
			m.logger.Debug().Str("file", name).Msg("Loaded ignore file")
		}
	}

	for _, r := range ruleFiles {
		for _, p := range Patterns(r.Globs) {
			if err := ValidatePattern(p); err != nil {
				m.invalid = append(m.invalid, doctorerrors.Wrapf(err, doctorerrors.ErrGlobInvalid,
					"%s has an invalid glob", r.Name()).WithDetail("rule", r.Name()))
			}
		}
	}

	return m
}

// Invalid returns one GLOB_INVALID error per unusable pattern
func (m *Matcher) Invalid() []error {
	return m.invalid
}

// Match reports which rules apply to path. path is absolute or relative to
// the project root.
func (m *Matcher) Match(path string) Match {
	abs := path
	if !filepath.IsAbs(abs) {
		abs = filepath.Join(m.root, path)
	}
	rel, err := filepath.Rel(m.root, abs)
	if err != nil {
		rel = path
	}
	rel = filepath.ToSlash(rel)

	isDir := false
	if info, err := m.fs.Stat(abs); err == nil {
		isDir = info.IsDir()
	}

	result := Match{
		Path:  rel,
		Rules: []Applied{},
	}
	if !strings.HasPrefix(rel, "../") {
		result.IgnoredBy = ignoredBy(m.ignores, rel, isDir)
		if result.IgnoredBy == "" && builtinIgnored(rel) {
			result.IgnoredBy = BuiltinIgnore
		}
	}

	for _, r := range m.rules {
		if reason, ok := m.applies(r, rel); ok {
			result.Rules = append(result.Rules, Applied{Rule: r, Name: r.Name(), Reason: reason})
		}
	}

	m.logger.Debug().
		Str("path", rel).
		Str("ignoredBy", result.IgnoredBy).
		Int("rules", len(result.Rules)).
		Msg("Matched path")

	return result
}

func (m *Matcher) applies(r *rules.RuleFile, rel string) (string, bool) {
	if r.AlwaysApply.IsAlways() {
		return ReasonAlways, true
	}
	for _, p := range Patterns(r.Globs) {
		if ValidatePattern(p) != nil {
			continue
		}
		if matchPattern(p, rel) {
			return p, true
		}
	}
	return "", false
}
