package matcher

import (
	"path/filepath"
	"strings"

	gitignore "github.com/denormal/go-gitignore"
	"github.com/spf13/afero"
)

// ignoreFile is one parsed ignore file at the project root
type ignoreFile struct {
	name string
	gi   gitignore.GitIgnore
}

// loadIgnoreFile parses root/name. Missing files yield nil.
func loadIgnoreFile(fs afero.Fs, root, name string) *ignoreFile {
	f, err := fs.Open(filepath.Join(root, name))
	if err != nil {
		return nil
	}
	defer func() { _ = f.Close() }()

	gi := gitignore.New(f, root, nil)
	if gi == nil {
		return nil
	}
	return &ignoreFile{name: name, gi: gi}
}

// ignoredBy returns the name of the first ignore file excluding rel or one of
// its parent directories
func ignoredBy(files []*ignoreFile, rel string, isDir bool) string {
	parts := strings.Split(rel, "/")
	for i := range parts {
		prefix := strings.Join(parts[:i+1], "/")
		dir := isDir || i < len(parts)-1
		for _, f := range files {
			if m := f.gi.Relative(prefix, dir); m != nil && m.Ignore() {
				return f.name
			}
		}
	}
	return ""
}
