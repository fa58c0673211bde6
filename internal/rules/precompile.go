package rules

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/devansh0703/avalanche-sentinel/internal/analysis"
	"github.com/devansh0703/avalanche-sentinel/internal/model"
)

var lowLevelCallRe = regexp.MustCompile(`\.\s*(call|delegatecall|staticcall)\s*[({]`)

// stakingPrecompile flags direct interactions with the staking precompiles
// and derives three context checks per interaction: missing payable,
// unchecked low-level call return, and weak access control on the enclosing
// function.
type stakingPrecompile struct {
	precompiles []addressMatcher
}

func newStakingPrecompile(reg Registries) *stakingPrecompile {
	return &stakingPrecompile{precompiles: compileAddresses(reg.StakingPrecompiles)}
}

func (d *stakingPrecompile) Meta() model.RuleMeta {
	return model.RuleMeta{
		ID:       "AVA-PRECOMPILE-001",
		Title:    "Staking precompile interaction and derived checks",
		Severity: model.SeverityCritical,
		Tags:     []string{"staking", "precompile"},
	}
}

func (d *stakingPrecompile) Evaluate(ctx context.Context, sc *analysis.ScanContext) ([]model.Finding, error) {
	var findings []model.Finding
	for i, line := range sc.Lines {
		for _, p := range d.precompiles {
			if !p.re.MatchString(line) {
				continue
			}
			findings = append(findings, model.Finding{
				Line:           i + 1,
				IssueType:      model.IssuePrecompile,
				Description:    fmt.Sprintf("Direct interaction with the %s precompile detected.", p.name),
				Recommendation: "This is a powerful, low-level operation. Review its correctness and security properties. Specific checks below.",
			})
			fc := analysis.EnclosingFunction(sc.Lines, i)
			if !fc.Payable() {
				findings = append(findings, model.Finding{
					Line:           i + 1,
					IssueType:      model.IssueMissingPayable,
					Description:    fmt.Sprintf("Interaction with a staking precompile requires `payable`, but the containing function ('%s') is not marked `payable`.", fc.Signature),
					Recommendation: "Ensure functions interacting with staking precompiles that send AVAX (e.g., delegate, addLiquidity) are marked `payable`.",
				})
			}
			if lowLevelCallRe.MatchString(line) && !strings.Contains(line, "require(") && !strings.Contains(line, "=") {
				findings = append(findings, model.Finding{
					Line:           i + 1,
					IssueType:      model.IssueUncheckedReturn,
					Description:    "The return value of a low-level call to a precompile is not explicitly checked.",
					Recommendation: "Always check the `success` boolean return value of low-level calls (`(bool success, bytes memory data) = addr.call(...)`). Use `require(success, \"Call failed\")` to prevent silent failures.",
				})
			}
			if fc.PubliclyVisible() && !fc.HasAccessControl() && !analysis.BodyHasAccessControl(sc.Lines, i) {
				findings = append(findings, model.Finding{
					Line:           i + 1,
					IssueType:      model.IssueWeakAccessControl,
					Description:    "A public/external function interacting with a staking precompile lacks explicit access control.",
					Recommendation: "Functions that can alter staking state should be strictly controlled (e.g., `onlyOwner`, multi-sig, or DAO). Public access is a major security risk.",
				})
			}
		}
	}
	return findings, nil
}
