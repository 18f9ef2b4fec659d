package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	doctorerrors "github.com/arthur-debert/builder-doctor/pkg/errors"
	"github.com/arthur-debert/builder-doctor/pkg/lint"
	"github.com/arthur-debert/builder-doctor/pkg/logging"
	"github.com/arthur-debert/builder-doctor/pkg/style"
)

// Headings and summaries
const (
	CleanSummary      = "%s (%d rules files. %d lines)."
	RecommendationsHd = "The following recommendations were found with your rules (%s):"
	JSONDumpPrefix    = "Rules Check Result: "
)

// Renderer writes reports to one writer
type Renderer struct {
	writer  io.Writer
	palette *style.Palette
}

// NewRenderer creates a renderer. color switches ANSI colours on the markers.
func NewRenderer(w io.Writer, color bool) *Renderer {
	logger := logging.GetLogger("output.renderer")
	logger.Debug().
		Bool("color", color).
		Msg("Creating renderer")

	return &Renderer{
		writer:  w,
		palette: style.NewPalette(w, color),
	}
}

// Render writes the report
func (r *Renderer) Render(report lint.Report) error {
	var b strings.Builder

	switch report.Outcome {
	case lint.OutcomeMisnamed:
		r.problems(&b, report.Problems)
	case lint.OutcomeRootUnreadable:
		r.messages(&b, report)
	default:
		if report.Empty() {
			fmt.Fprintf(&b, "%s "+CleanSummary+"\n",
				r.palette.Success(style.SuccessMarker), report.RootPath, report.RuleCount, report.TotalLines)
			break
		}
		b.WriteString("\n")
		fmt.Fprintf(&b, RecommendationsHd+"\n", report.RootPath)
		r.messages(&b, report)
	}

	if _, err := io.WriteString(r.writer, b.String()); err != nil {
		return doctorerrors.Wrap(err, doctorerrors.ErrOutput, "failed to write report")
	}
	return nil
}

func (r *Renderer) messages(b *strings.Builder, report lint.Report) {
	r.problems(b, report.Problems)
	for _, msg := range report.Warnings {
		fmt.Fprintf(b, "%s %s\n", r.palette.Warning(style.WarningMarker), msg)
	}
	for _, msg := range report.Infos {
		fmt.Fprintf(b, "%s %s\n", r.palette.Info(style.InfoMarker), msg)
	}
}

func (r *Renderer) problems(b *strings.Builder, problems []string) {
	for _, msg := range problems {
		fmt.Fprintf(b, "%s %s\n", r.palette.Problem(style.ProblemMarker), msg)
	}
}

// RenderJSON writes the verbose dump of v
func (r *Renderer) RenderJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return doctorerrors.Wrap(err, doctorerrors.ErrOutput, "failed to encode result")
	}
	if _, err := fmt.Fprintf(r.writer, "%s%s\n", JSONDumpPrefix, data); err != nil {
		return doctorerrors.Wrap(err, doctorerrors.ErrOutput, "failed to write result")
	}
	return nil
}
