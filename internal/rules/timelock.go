package rules

import (
	"context"
	"regexp"

	"github.com/devansh0703/avalanche-sentinel/internal/analysis"
	"github.com/devansh0703/avalanche-sentinel/internal/model"
)

var (
	criticalSetterRe = regexp.MustCompile(`function\s+(set|change)(Admin|Owner|Pauser|Operator)\s*\(`)
	criticalVarRe    = regexp.MustCompile(`\b(admin|owner|pauser|operator)\b`)
	timelockRe       = regexp.MustCompile(`\b(block\.timestamp|block\.number)\b.*\b(>=|>)\b`)
)

// missingTimelock fires at most once per file: a privileged-role setter plus
// usage of the role, with no delay comparison anywhere in the source.
type missingTimelock struct{}

func (d *missingTimelock) Meta() model.RuleMeta {
	return model.RuleMeta{
		ID:       "AVA-TIMELOCK-001",
		Title:    "Privileged role change without time-lock",
		Severity: model.SeverityMedium,
		Tags:     []string{"consensus", "access-control"},
	}
}

func (d *missingTimelock) Evaluate(ctx context.Context, sc *analysis.ScanContext) ([]model.Finding, error) {
	if !criticalSetterRe.MatchString(sc.Source) || !criticalVarRe.MatchString(sc.Source) {
		return nil, nil
	}
	if timelockRe.MatchString(sc.Source) {
		return nil, nil
	}
	line := 0
	for i, l := range sc.Lines {
		if criticalSetterRe.MatchString(l) {
			line = i + 1
			break
		}
	}
	return []model.Finding{{
		Line:           line,
		IssueType:      model.IssueMultiTxDependency,
		Description:    "A critical state variable (e.g., owner, admin) can be set and immediately used without a time-lock. This is vulnerable to front-running and reorgs on slower-finality chains.",
		Recommendation: "Implement a time-lock or a two-step process for critical state changes. E.g., `proposeNewAdmin(address)` in one tx, `acceptAdmin()` in a later tx after a time delay (`block.timestamp + DELAY`).",
	}}, nil
}
