// Test Type: Unit Test
// Description: Tests for rules folder discovery and root rule resolution

package rules_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/builder-doctor/pkg/rules"
	"github.com/arthur-debert/builder-doctor/pkg/testutil"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(files []*rules.RuleFile) []string {
	out := make([]string, 0, len(files))
	for _, f := range files {
		out = append(out, f.Name())
	}
	return out
}

func TestDiscoverer_Discover(t *testing.T) {
	t.Run("no_rules_folders", func(t *testing.T) {
		env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)

		files := rules.NewDiscoverer(env.FS, env.Root, nil).Discover()
		assert.NotNil(t, files)
		assert.Empty(t, files)
	})

	t.Run("recursive_walk_keeps_every_file", func(t *testing.T) {
		env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
		env.WriteFiles(map[string]string{
			".cursor/rules/api.mdc":             "---\ndescription: api\n---\nbody",
			".cursor/rules/notes.txt":           "not a rule",
			".cursor/rules/frontend/ui.mdc":     "---\ndescription: ui\n---\nbody",
			".cursor/rules/frontend/deep/x.mdc": "x",
		})

		files := rules.NewDiscoverer(env.FS, env.Root, nil).Discover()
		assert.Equal(t, []string{"api.mdc", "x.mdc", "ui.mdc", "notes.txt"}, names(files))
		for _, f := range files {
			assert.True(t, filepath.IsAbs(f.Path), f.Path)
		}
	})

	t.Run("last_existing_folder_wins", func(t *testing.T) {
		env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
		env.WriteFiles(map[string]string{
			".cursor/rules/cursor-only.mdc":  "c",
			".builder/rules/builder-one.mdc": "b1",
			".builder/rules/builder-two.mdc": "b2",
		})

		files := rules.NewDiscoverer(env.FS, env.Root, nil).Discover()
		assert.Equal(t, []string{"builder-one.mdc", "builder-two.mdc"}, names(files))
	})

	t.Run("earlier_folder_used_when_later_missing", func(t *testing.T) {
		env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
		env.WriteFile(".cursor/rules/cursor-only.mdc", "c")

		files := rules.NewDiscoverer(env.FS, env.Root, nil).Discover()
		assert.Equal(t, []string{"cursor-only.mdc"}, names(files))
	})

	t.Run("empty_later_folder_still_replaces", func(t *testing.T) {
		env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
		env.WriteFile(".cursor/rules/cursor-only.mdc", "c")
		env.Mkdir(".builder/rules")

		files := rules.NewDiscoverer(env.FS, env.Root, nil).Discover()
		assert.Empty(t, files)
	})

	t.Run("configured_folders", func(t *testing.T) {
		env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
		env.WriteFile("docs/agent-rules/a.mdc", "a")

		files := rules.NewDiscoverer(env.FS, env.Root, []string{"docs/agent-rules"}).Discover()
		assert.Equal(t, []string{"a.mdc"}, names(files))
	})
}

// failingFs fails Stat for one path to simulate an entry that vanished
type failingFs struct {
	afero.Fs
	failPath string
}

func (f failingFs) Stat(name string) (os.FileInfo, error) {
	if name == f.failPath {
		return nil, errors.New("permission denied")
	}
	return f.Fs.Stat(name)
}

func TestDiscoverer_SkipsUnreadableEntries(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	env.WriteFile(".builder/rules/good.mdc", "good")
	bad := env.WriteFile(".builder/rules/bad.mdc", "bad")
	env.WriteFile(".builder/rules/locked/inner.mdc", "inner")

	fs := failingFs{Fs: env.FS, failPath: bad}
	files := rules.NewDiscoverer(fs, env.Root, nil).Discover()

	assert.Equal(t, []string{"good.mdc", "inner.mdc"}, names(files))
}

func TestDiscoverer_SkipsUnreadableDirectory(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	env.WriteFile(".builder/rules/good.mdc", "good")
	locked := env.WriteFile(".builder/rules/locked/inner.mdc", "inner")

	fs := failingFs{Fs: env.FS, failPath: filepath.Dir(locked)}
	files := rules.NewDiscoverer(fs, env.Root, nil).Discover()

	assert.Equal(t, []string{"good.mdc"}, names(files))
}

// openFailFs fails Open for one path; Stat still succeeds
type openFailFs struct {
	afero.Fs
	failPath string
}

func (f openFailFs) Open(name string) (afero.File, error) {
	if name == f.failPath {
		return nil, errors.New("input/output error")
	}
	return f.Fs.Open(name)
}

// captureLogs routes the global logger into a buffer for the test
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	previous := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = previous })
	return &buf
}

func TestDiscoverer_SkipsFileThatFailsToRead(t *testing.T) {
	logs := captureLogs(t)
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	env.WriteFile(".builder/rules/a.mdc", "a")
	bad := env.WriteFile(".builder/rules/b.mdc", "b")
	env.WriteFile(".builder/rules/c.mdc", "c")

	fs := openFailFs{Fs: env.FS, failPath: bad}
	files := rules.NewDiscoverer(fs, env.Root, nil).Discover()

	assert.Equal(t, []string{"a.mdc", "c.mdc"}, names(files))
	assert.Contains(t, logs.String(), "Skipping rule file that could not be read")
	assert.Contains(t, logs.String(), "RULE_PARSE")
}

func TestDiscoverer_DirectoryListErrorsAreCoded(t *testing.T) {
	t.Run("dir_read", func(t *testing.T) {
		logs := captureLogs(t)
		env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
		env.WriteFile(".builder/rules/good.mdc", "good")
		locked := env.WriteFile(".builder/rules/locked/inner.mdc", "inner")

		fs := openFailFs{Fs: env.FS, failPath: filepath.Dir(locked)}
		files := rules.NewDiscoverer(fs, env.Root, nil).Discover()

		assert.Equal(t, []string{"good.mdc"}, names(files))
		assert.Contains(t, logs.String(), "DIR_READ")
	})

	t.Run("file_access", func(t *testing.T) {
		logs := captureLogs(t)
		env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
		env.WriteFile(".builder/rules/good.mdc", "good")
		bad := env.WriteFile(".builder/rules/bad.mdc", "bad")

		fs := failingFs{Fs: env.FS, failPath: bad}
		files := rules.NewDiscoverer(fs, env.Root, nil).Discover()

		assert.Equal(t, []string{"good.mdc"}, names(files))
		assert.Contains(t, logs.String(), "FILE_ACCESS")
	})
}

func TestDiscoverer_ResolveRoot(t *testing.T) {
	t.Run("agents_md_preferred", func(t *testing.T) {
		env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
		env.WriteFile("agents.md", "agents")
		env.WriteFile(".builderrules", "builder")

		root, err := rules.NewDiscoverer(env.FS, env.Root, nil).ResolveRoot()
		require.NoError(t, err)
		require.NotNil(t, root)
		assert.Equal(t, "agents.md", root.Name())
		assert.Equal(t, "agents", root.Body)
	})

	t.Run("builderrules_fallback", func(t *testing.T) {
		env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
		env.WriteFile(".builderrules", "builder")

		root, err := rules.NewDiscoverer(env.FS, env.Root, nil).ResolveRoot()
		require.NoError(t, err)
		require.NotNil(t, root)
		assert.Equal(t, ".builderrules", root.Name())
	})

	t.Run("none", func(t *testing.T) {
		env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)

		root, err := rules.NewDiscoverer(env.FS, env.Root, nil).ResolveRoot()
		require.NoError(t, err)
		assert.Nil(t, root)
	})

	t.Run("unreadable_root", func(t *testing.T) {
		env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
		env.Mkdir("agents.md")

		root, err := rules.NewDiscoverer(env.FS, env.Root, nil).ResolveRoot()
		assert.Error(t, err)
		assert.Nil(t, root)
	})
}

func TestDiscoverer_Scan(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	env.WriteFile("agents.md", testutil.Text(10))
	env.WriteFile(".builder/rules/a.mdc", "a")
	env.Mkdir("agents-dir")

	result := rules.NewDiscoverer(env.FS, env.Root, nil).Scan()
	assert.True(t, result.HasAgentsMd)
	assert.False(t, result.HasBuilderRulesFile)
	assert.Len(t, result.Rules, 1)
	require.NotNil(t, result.RootRuleFile)
	assert.Equal(t, 10, result.RootRuleFile.Lines)

	t.Run("unreadable_root_left_nil", func(t *testing.T) {
		env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
		env.Mkdir(".builderrules")

		result := rules.NewDiscoverer(env.FS, env.Root, nil).Scan()
		assert.True(t, result.HasBuilderRulesFile)
		assert.Nil(t, result.RootRuleFile)
	})
}
