// Test Type: Unit Test
// Description: Tests for report rendering

package output_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	doctorerrors "github.com/arthur-debert/builder-doctor/pkg/errors"
	"github.com/arthur-debert/builder-doctor/pkg/lint"
	"github.com/arthur-debert/builder-doctor/pkg/output"
	"github.com/arthur-debert/builder-doctor/pkg/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, report lint.Report) string {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, output.NewRenderer(&buf, false).Render(report))
	return buf.String()
}

func TestRender(t *testing.T) {
	tests := []struct {
		name     string
		report   lint.Report
		expected string
	}{
		{
			name: "clean",
			report: lint.Report{
				Outcome:    lint.OutcomeComplete,
				RootPath:   "agents.md",
				RuleCount:  3,
				TotalLines: 42,
			},
			expected: "✓ agents.md (3 rules files. 42 lines).\n",
		},
		{
			name: "recommendations",
			report: lint.Report{
				Outcome:  lint.OutcomeComplete,
				RootPath: ".builderrules",
				Problems: []string{"p1"},
				Warnings: []string{"w1", "w2"},
				Infos:    []string{"i1"},
			},
			expected: "\nThe following recommendations were found with your rules (.builderrules):\n" +
				"✗ p1\n⚠ w1\n⚠ w2\nℹ i1\n",
		},
		{
			name: "infos_only_still_lists",
			report: lint.Report{
				Outcome:  lint.OutcomeComplete,
				RootPath: "agents.md",
				Infos:    []string{"i1"},
			},
			expected: "\nThe following recommendations were found with your rules (agents.md):\nℹ i1\n",
		},
		{
			name: "misnamed",
			report: lint.Report{
				Outcome:  lint.OutcomeMisnamed,
				Problems: []string{lint.MsgMisnamedAgents},
			},
			expected: "✗ " + lint.MsgMisnamedAgents + "\n",
		},
		{
			name:     "misnamed_nothing_found",
			report:   lint.Report{Outcome: lint.OutcomeMisnamed},
			expected: "",
		},
		{
			name: "root_unreadable",
			report: lint.Report{
				Outcome:  lint.OutcomeRootUnreadable,
				Problems: []string{lint.MsgRootUnreadable},
				Infos:    []string{lint.MsgLegacyRulesFolder},
			},
			expected: "✗ " + lint.MsgRootUnreadable + "\nℹ " + lint.MsgLegacyRulesFolder + "\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, render(t, tt.report))
		})
	}
}

func TestRender_Color(t *testing.T) {
	var buf bytes.Buffer
	report := lint.Report{Outcome: lint.OutcomeComplete, RootPath: "agents.md", Problems: []string{"p"}}

	require.NoError(t, output.NewRenderer(&buf, true).Render(report))
	assert.Contains(t, buf.String(), "\x1b[")
	assert.Contains(t, buf.String(), "✗")
}

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestRender_WriteError(t *testing.T) {
	err := output.NewRenderer(brokenWriter{}, false).Render(lint.Report{Outcome: lint.OutcomeMisnamed, Problems: []string{"x"}})
	assert.True(t, doctorerrors.IsErrorCode(err, doctorerrors.ErrOutput))
}

func TestRenderJSON(t *testing.T) {
	var buf bytes.Buffer
	result := rules.Result{
		HasAgentsMd: true,
		Rules: []*rules.RuleFile{
			{Path: "/p/.builder/rules/a.mdc", Description: "a", AlwaysApply: rules.ApplyAlways, Body: "b", Lines: 1},
			{Path: "/p/.builder/rules/b.mdc", Lines: 2},
		},
	}

	require.NoError(t, output.NewRenderer(&buf, false).RenderJSON(result))

	out := buf.String()
	require.True(t, strings.HasPrefix(out, output.JSONDumpPrefix+"{\n"), out)
	assert.Contains(t, out, `"hasAgentsMd": true`)
	assert.Contains(t, out, `"filename": "/p/.builder/rules/a.mdc"`)
	assert.Contains(t, out, `"alwaysApply": true`)
	assert.Equal(t, 1, strings.Count(out, `"alwaysApply"`))
	assert.NotContains(t, out, "rootRuleFile")
}
