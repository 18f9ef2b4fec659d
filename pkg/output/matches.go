package output

import (
	"fmt"
	"strings"

	doctorerrors "github.com/arthur-debert/builder-doctor/pkg/errors"
	"github.com/arthur-debert/builder-doctor/pkg/matcher"
	"github.com/arthur-debert/builder-doctor/pkg/style"
)

// NoRulesApply is printed under paths no rule covers
const NoRulesApply = "no rules apply"

// RenderMatches writes one block per matched path. Invalid globs are listed
// first as warnings.
func (r *Renderer) RenderMatches(matches []matcher.Match, invalid []error) error {
	var b strings.Builder

	for _, err := range invalid {
		fmt.Fprintf(&b, "%s %s\n", r.palette.Warning(style.WarningMarker), err.Error())
	}

	for _, m := range matches {
		b.WriteString(m.Path)
		if m.Ignored() {
			fmt.Fprintf(&b, " (ignored by %s)", m.IgnoredBy)
		}
		b.WriteString("\n")

		if len(m.Rules) == 0 {
			fmt.Fprintf(&b, "  %s %s\n", r.palette.Info(style.InfoMarker), NoRulesApply)
			continue
		}
		for _, a := range m.Rules {
			fmt.Fprintf(&b, "  %s %s (%s)\n", r.palette.Success(style.SuccessMarker), a.Name, a.Reason)
		}
	}

	if _, err := r.writer.Write([]byte(b.String())); err != nil {
		return doctorerrors.Wrap(err, doctorerrors.ErrOutput, "failed to write matches")
	}
	return nil
}
