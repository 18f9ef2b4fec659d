package lint

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/builder-doctor/pkg/config"
	"github.com/arthur-debert/builder-doctor/pkg/filesystem"
	"github.com/arthur-debert/builder-doctor/pkg/frontmatter"
	"github.com/arthur-debert/builder-doctor/pkg/logging"
	"github.com/arthur-debert/builder-doctor/pkg/rules"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// Engine checks scan results for the project rooted at root
type Engine struct {
	fs         afero.Fs
	root       string
	thresholds config.Thresholds
	logger     zerolog.Logger
}

// NewEngine creates an engine. The filesystem is only used to check for
// misnamed root files and the legacy rules folder.
func NewEngine(fs afero.Fs, root string, thresholds config.Thresholds) *Engine {
	return &Engine{
		fs:         fs,
		root:       root,
		thresholds: thresholds,
		logger:     logging.GetLogger("lint.engine"),
	}
}

// Lint produces the report for result. It never fails.
func (e *Engine) Lint(result rules.Result) Report {
	report := Report{RuleCount: len(result.Rules)}

	if !result.HasAgentsMd && !result.HasBuilderRulesFile {
		report.Outcome = OutcomeMisnamed
		for _, m := range misnamedFiles {
			if e.exists(m.name) {
				report.problem(m.message)
			}
		}
		e.logger.Debug().Int("problems", len(report.Problems)).Msg("No root rule file")
		return report
	}

	if e.exists(LegacyRulesFolder) {
		report.info(MsgLegacyRulesFolder)
	}

	if result.RootRuleFile == nil {
		report.Outcome = OutcomeRootUnreadable
		report.problem(MsgRootUnreadable)
		return report
	}

	root := result.RootRuleFile
	report.RootPath = e.displayPath(root.Path)

	t := e.thresholds
	total := root.Lines
	var alwaysNames []string

	for _, r := range result.Rules {
		name := r.Name()
		always := r.AlwaysApply.IsAlways()
		if always {
			alwaysNames = append(alwaysNames, name)
			total += r.Lines
		}

		hasExt := frontmatter.HasRuleExtension(name, t.Extension)
		if !hasExt {
			report.warn(fmt.Sprintf(MsgWrongExtension, name, t.Extension))
		}
		if !always && hasExt && frontmatter.Trim(r.Description) == "" {
			report.warn(fmt.Sprintf(MsgMissingDescription, name))
		}
		if always && r.Globs == "" {
			report.info(fmt.Sprintf(MsgAlwaysWithoutGlobs, name))
		}
		if hasExt {
			switch {
			case r.Lines > t.MaxLines:
				report.problem(fmt.Sprintf(MsgRuleTooLong, name, r.Lines, t.MaxLines))
			case r.Lines > t.WarnLines:
				report.warn(fmt.Sprintf(MsgRuleLong, name, r.Lines, t.WarnLines))
			}
		}
	}

	if len(alwaysNames) > t.MaxAlwaysApply {
		report.warn(fmt.Sprintf(MsgTooManyAlways, len(alwaysNames), report.RootPath))
	}
	if root.Lines > t.MaxLines {
		report.problem(fmt.Sprintf(MsgRootTooLong, report.RootPath, root.Lines, t.MaxLines))
	}
	if total > t.MaxTotalLines {
		if len(alwaysNames) > 0 {
			report.problem(fmt.Sprintf(MsgTotalWithAlways, total, strings.Join(alwaysNames, ", "), t.MaxTotalLines))
		} else {
			report.problem(fmt.Sprintf(MsgTotalRootOnly, total, t.MaxTotalLines))
		}
	}

	report.Outcome = OutcomeComplete
	report.TotalLines = total

	e.logger.Debug().
		Int("problems", len(report.Problems)).
		Int("warnings", len(report.Warnings)).
		Int("infos", len(report.Infos)).
		Int("totalLines", total).
		Msg("Lint complete")

	return report
}

func (e *Engine) exists(rel string) bool {
	return filesystem.Exists(e.fs, filepath.Join(e.root, rel))
}

// displayPath shows paths inside the project relative to it
func (e *Engine) displayPath(path string) string {
	rel, err := filepath.Rel(e.root, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return rel
}
