// Package style holds the terminal colours of builder-doctor and decides
// whether an output stream should get them at all.
package style
