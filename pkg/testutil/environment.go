// pkg/testutil/environment.go
// DEPENDENCIES: None (base test utilities)
// PURPOSE: Build isolated project trees for rules tests

package testutil

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/builder-doctor/pkg/filesystem"
	"github.com/spf13/afero"
)

// EnvType defines the type of test environment
type EnvType int

const (
	EnvMemoryOnly EnvType = iota // Pure in-memory, no real filesystem
	EnvIsolated                  // Real filesystem in temp directory
)

// MemoryRoot is the project directory used by memory environments
const MemoryRoot = "/project"

// TestEnvironment is a project directory on a filesystem
type TestEnvironment struct {
	FS   afero.Fs
	Root string
	Type EnvType

	t *testing.T
}

// NewTestEnvironment creates an empty project
func NewTestEnvironment(t *testing.T, envType EnvType) *TestEnvironment {
	t.Helper()

	env := &TestEnvironment{t: t, Type: envType}
	switch envType {
	case EnvIsolated:
		env.FS = filesystem.NewOS()
		env.Root = t.TempDir()
	default:
		env.FS = filesystem.NewMemory()
		env.Root = MemoryRoot
		if err := env.FS.MkdirAll(env.Root, 0755); err != nil {
			t.Fatalf("failed to create project root: %v", err)
		}
	}
	return env
}

// Path joins rel onto the project root
func (e *TestEnvironment) Path(rel string) string {
	return filepath.Join(e.Root, filepath.FromSlash(rel))
}

// WriteFile creates a file, and its parent directories, relative to the project root
func (e *TestEnvironment) WriteFile(rel, content string) string {
	e.t.Helper()

	path := e.Path(rel)
	if err := e.FS.MkdirAll(filepath.Dir(path), 0755); err != nil {
		e.t.Fatalf("failed to create directory for %s: %v", rel, err)
	}
	if err := afero.WriteFile(e.FS, path, []byte(content), 0644); err != nil {
		e.t.Fatalf("failed to write %s: %v", rel, err)
	}
	return path
}

// WriteFiles writes every entry of files
func (e *TestEnvironment) WriteFiles(files map[string]string) {
	e.t.Helper()
	for rel, content := range files {
		e.WriteFile(rel, content)
	}
}

// Mkdir creates a directory relative to the project root
func (e *TestEnvironment) Mkdir(rel string) string {
	e.t.Helper()

	path := e.Path(rel)
	if err := e.FS.MkdirAll(path, 0755); err != nil {
		e.t.Fatalf("failed to create %s: %v", rel, err)
	}
	return path
}
