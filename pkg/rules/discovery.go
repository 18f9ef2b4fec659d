package rules

import (
	"path/filepath"

	"github.com/arthur-debert/builder-doctor/pkg/errors"
	"github.com/arthur-debert/builder-doctor/pkg/filesystem"
	"github.com/arthur-debert/builder-doctor/pkg/logging"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// Discoverer finds the rule files of the project rooted at root
type Discoverer struct {
	fs      afero.Fs
	root    string
	folders []string
	reader  *Reader
	logger  zerolog.Logger
}

// NewDiscoverer creates a discoverer. An empty folders list falls back to
// DefaultRuleFolders.
func NewDiscoverer(fs afero.Fs, root string, folders []string) *Discoverer {
	if len(folders) == 0 {
		folders = DefaultRuleFolders
	}
	return &Discoverer{
		fs:      fs,
		root:    root,
		folders: folders,
		reader:  NewReader(fs),
		logger:  logging.GetLogger("rules.discovery"),
	}
}

// Root returns the project directory
func (d *Discoverer) Root() string {
	return d.root
}

// Discover walks the rules folders and returns the files of the last one that
// exists
func (d *Discoverer) Discover() []*RuleFile {
	files := []*RuleFile{}
	for _, folder := range d.folders {
		dir := filepath.Join(d.root, folder)
		if !filesystem.Exists(d.fs, dir) {
			continue
		}
		files = d.walk(dir)
		d.logger.Debug().
			Str("folder", folder).
			Int("files", len(files)).
			Msg("Walked rules folder")
	}
	return files
}

// walk collects every file below dir. Unreadable directories and files are
// logged and skipped.
func (d *Discoverer) walk(dir string) []*RuleFile {
	entries, err := filesystem.ReadDir(d.fs, dir)
	if err != nil {
		err = errors.Wrapf(err, errors.ErrDirRead, "failed to list %s", dir)
		d.logger.Warn().Err(err).Str("dir", dir).Msg("Ignoring error reading rules directory")
		return []*RuleFile{}
	}

	files := []*RuleFile{}
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())

		info, err := d.fs.Stat(path)
		if err != nil {
			err = errors.Wrapf(err, errors.ErrFileAccess, "failed to stat %s", path)
			d.logger.Warn().Err(err).Str("path", path).Msg("Ignoring unreadable rules entry")
			continue
		}

		if info.IsDir() {
			files = append(files, d.walk(path)...)
			continue
		}

		rule, err := d.reader.Read(path)
		if err != nil {
			d.logger.Warn().Err(err).Str("path", path).Msg("Skipping rule file that could not be read")
			continue
		}
		files = append(files, rule)
	}
	return files
}

// HasAgentsMd reports whether agents.md exists at the project root
func (d *Discoverer) HasAgentsMd() bool {
	return filesystem.Exists(d.fs, filepath.Join(d.root, AgentsFile))
}

// HasBuilderRulesFile reports whether .builderrules exists at the project root
func (d *Discoverer) HasBuilderRulesFile() bool {
	return filesystem.Exists(d.fs, filepath.Join(d.root, BuilderRulesFile))
}

// ResolveRoot reads the root rule file: agents.md if present, else
// .builderrules. It returns nil when neither exists.
func (d *Discoverer) ResolveRoot() (*RuleFile, error) {
	switch {
	case d.HasAgentsMd():
		return d.reader.Read(filepath.Join(d.root, AgentsFile))
	case d.HasBuilderRulesFile():
		return d.reader.Read(filepath.Join(d.root, BuilderRulesFile))
	}
	return nil, nil
}

// Scan gathers the root file and discovered rules. A root file that cannot be
// read is logged and left nil.
func (d *Discoverer) Scan() Result {
	result := Result{
		HasAgentsMd:         d.HasAgentsMd(),
		HasBuilderRulesFile: d.HasBuilderRulesFile(),
		Rules:               d.Discover(),
	}

	root, err := d.ResolveRoot()
	if err != nil {
		d.logger.Error().Err(err).Msg("Failed to read root rule file")
	}
	result.RootRuleFile = root

	d.logger.Info().
		Bool("hasAgentsMd", result.HasAgentsMd).
		Bool("hasBuilderRulesFile", result.HasBuilderRulesFile).
		Int("rules", len(result.Rules)).
		Msg("Rules scan complete")

	return result
}
