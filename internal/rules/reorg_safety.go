package rules

import (
	"context"
	"regexp"

	"github.com/devansh0703/avalanche-sentinel/internal/analysis"
	"github.com/devansh0703/avalanche-sentinel/internal/model"
)

var (
	commitDeclRe = regexp.MustCompile(`function\s+(commit|register|submit)\s*\(\s*bytes32`)
	revealDeclRe = regexp.MustCompile(`function\s+(reveal|claim|solve)\s*\(`)
	blockNumRe   = regexp.MustCompile(`\bblock\.number\b`)
)

// reorgSafety flags commit-reveal schemes that never consult block.number to
// enforce a delay between the two phases.
type reorgSafety struct{}

func (d *reorgSafety) Meta() model.RuleMeta {
	return model.RuleMeta{
		ID:       "AVA-REORG-001",
		Title:    "Commit-reveal scheme without finality delay",
		Severity: model.SeverityHigh,
		Tags:     []string{"consensus"},
	}
}

func (d *reorgSafety) Evaluate(ctx context.Context, sc *analysis.ScanContext) ([]model.Finding, error) {
	if !commitDeclRe.MatchString(sc.Source) || !revealDeclRe.MatchString(sc.Source) {
		return nil, nil
	}
	if blockNumRe.MatchString(sc.Source) {
		return nil, nil
	}
	// The reveal declaration may span lines; when no single line matches,
	// the finding is reported against the whole file.
	line := 0
	for i, l := range sc.Lines {
		if revealDeclRe.MatchString(l) {
			line = i + 1
			break
		}
	}
	return []model.Finding{{
		Line:           line,
		IssueType:      model.IssueReorgSafety,
		Description:    "A commit-reveal scheme was detected, but it does not appear to use `block.number` to enforce a delay between the commit and reveal phases.",
		Recommendation: "While safe on Avalanche due to fast finality, this pattern is vulnerable to reorgs on other chains. To ensure universal compatibility, use `block.number` to enforce a delay.",
	}}, nil
}
