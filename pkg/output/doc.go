// Package output writes lint reports for people and, on request, the raw scan
// as JSON.
//
// A report is rendered according to its outcome:
//
//	misnamed          one line per problem
//	root-unreadable   problems, warnings, infos
//	complete, clean   ✓ <root> (<n> rules files. <lines> lines).
//	complete          a heading followed by problems, warnings, infos
package output
