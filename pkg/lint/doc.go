// Package lint turns a rules scan into advice about the project's rule files.
//
// Advice comes in three tiers. Problems are likely to make the agent ignore
// rules, warnings are probable mistakes and infos are suggestions. Checks never
// short-circuit each other, so one file can collect several messages. Whole
// project checks (always-apply count, root size, total budget) follow the
// per-file messages.
package lint
