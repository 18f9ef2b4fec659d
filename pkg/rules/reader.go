package rules

import (
	"strings"

	"github.com/arthur-debert/builder-doctor/pkg/errors"
	"github.com/arthur-debert/builder-doctor/pkg/filesystem"
	"github.com/arthur-debert/builder-doctor/pkg/frontmatter"
	"github.com/arthur-debert/builder-doctor/pkg/logging"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// Reader turns a path into a RuleFile
type Reader struct {
	fs     afero.Fs
	logger zerolog.Logger
}

// NewReader creates a reader on the given filesystem
func NewReader(fs afero.Fs) *Reader {
	return &Reader{
		fs:     fs,
		logger: logging.GetLogger("rules.reader"),
	}
}

// Read loads and decodes the rule file at path. A path that is missing or not
// a regular file fails with ErrFileNotFound; every failure is wrapped in
// ErrRuleParse.
func (r *Reader) Read(path string) (*RuleFile, error) {
	if !filesystem.IsFile(r.fs, path) {
		notFound := errors.Newf(errors.ErrFileNotFound, "file not found at path: %s", path)
		return nil, errors.Wrapf(notFound, errors.ErrRuleParse, "error parsing rule file at %s", path).
			WithDetail("path", path)
	}

	data, err := afero.ReadFile(r.fs, path)
	if err != nil {
		readErr := errors.Wrapf(err, errors.ErrFileRead, "failed to read %s", path)
		return nil, errors.Wrapf(readErr, errors.ErrRuleParse, "error parsing rule file at %s", path).
			WithDetail("path", path)
	}

	content := string(data)
	fm, _ := frontmatter.Decode(content)

	rule := &RuleFile{
		Path:        path,
		Description: fm.Description,
		Globs:       fm.Glob,
		Body:        content,
		Lines:       CountLines(content),
	}
	if fm.Mode == frontmatter.ModeAlways {
		rule.AlwaysApply = ApplyAlways
	}

	r.logger.Debug().
		Str("path", path).
		Int("lines", rule.Lines).
		Bool("alwaysApply", rule.AlwaysApply.IsAlways()).
		Msg("Read rule file")

	return rule, nil
}

// CountLines returns the number of newline-separated segments in content.
// An empty string counts as one line and a trailing newline adds an empty one.
func CountLines(content string) int {
	return strings.Count(content, "\n") + 1
}
