// Package filesystem provides the filesystem implementations used by builder-doctor.
//
// All rule discovery and linting reads through an afero.Fs so the same code runs
// against the real project directory and against in-memory trees in tests.
package filesystem
