package rules

import (
	"context"
	"regexp"

	"github.com/devansh0703/avalanche-sentinel/internal/analysis"
	"github.com/devansh0703/avalanche-sentinel/internal/model"
)

var (
	nodeIDRe           = regexp.MustCompile(`\bNodeID-[0-9a-zA-Z]+\b`)
	rewardWithdrawalRe = regexp.MustCompile(`(?i)function\s+[a-zA-Z0-9_]*(withdraw|claim)[a-zA-Z0-9_]*\s*\(`)
)

// validatorDependency flags hardcoded validator NodeIDs per line, and once
// per file the combination of a staking precompile interaction with no
// reward-withdrawal function anywhere in the source.
type validatorDependency struct {
	precompiles []addressMatcher
}

func newValidatorDependency(reg Registries) *validatorDependency {
	return &validatorDependency{precompiles: compileAddresses(reg.StakingPrecompiles)}
}

func (d *validatorDependency) Meta() model.RuleMeta {
	return model.RuleMeta{
		ID:       "AVA-VALIDATOR-001",
		Title:    "Hardcoded validator dependency",
		Severity: model.SeverityMedium,
		Tags:     []string{"staking"},
	}
}

func (d *validatorDependency) Evaluate(ctx context.Context, sc *analysis.ScanContext) ([]model.Finding, error) {
	var findings []model.Finding
	for i, line := range sc.Lines {
		if !nodeIDRe.MatchString(line) {
			continue
		}
		findings = append(findings, model.Finding{
			Line:           i + 1,
			IssueType:      model.IssueValidatorDep,
			Description:    "A hardcoded validator NodeID was found. The contract's behavior depends on a specific validator remaining in the active set.",
			Recommendation: "Validators rotate, get slashed, and churn. Store validator identifiers in updatable state (constructor argument or guarded setter) rather than hardcoding them.",
		})
	}

	interacts := false
	for _, p := range d.precompiles {
		if p.re.MatchString(sc.Source) {
			interacts = true
			break
		}
	}
	if interacts && !rewardWithdrawalRe.MatchString(sc.Source) {
		findings = append(findings, model.Finding{
			Line:           0,
			IssueType:      model.IssueStrandedRewards,
			Description:    "The contract interacts with a staking precompile but declares no function to withdraw or claim accumulated rewards.",
			Recommendation: "Add an explicit reward-withdrawal function (e.g., `claimRewards()`). Without one, rewards accrued through the precompile may be permanently stranded in the contract.",
		})
	}
	return findings, nil
}
