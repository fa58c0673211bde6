package report

import (
	"bytes"

	"github.com/owenrumney/go-sarif/v2/sarif"

	"github.com/devansh0703/avalanche-sentinel/internal/model"
)

// ToSARIF renders the findings of one local scan as a SARIF 2.1.0 report.
// Whole-file findings (line 0) are pinned to line 1, the closest SARIF can
// express.
func ToSARIF(findings []model.Finding, uri string) ([]byte, error) {
	rep, err := sarif.New(sarif.Version210)
	if err != nil {
		return nil, err
	}
	run := sarif.NewRunWithInformationURI("avalanche-sentinel", "https://github.com/devansh0703/avalanche-sentinel")
	for _, f := range findings {
		rule := run.AddRule(f.IssueType).WithDescription(f.Description)

		line := f.Line
		if line == 0 {
			line = 1
		}
		location := sarif.NewLocation().WithPhysicalLocation(
			sarif.NewPhysicalLocation().
				WithArtifactLocation(sarif.NewArtifactLocation().WithUri(uri)).
				WithRegion(sarif.NewRegion().WithStartLine(line)),
		)

		result := sarif.NewRuleResult(rule.ID).
			WithMessage(sarif.NewTextMessage(f.Description + " " + f.Recommendation)).
			WithLevel("warning").
			WithLocations([]*sarif.Location{location})
		run.AddResult(result)
	}
	rep.AddRun(run)

	var buf bytes.Buffer
	if err := rep.PrettyWrite(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
