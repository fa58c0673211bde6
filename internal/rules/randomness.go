package rules

import (
	"context"
	"regexp"

	"github.com/devansh0703/avalanche-sentinel/internal/analysis"
	"github.com/devansh0703/avalanche-sentinel/internal/model"
)

var (
	hashingRe      = regexp.MustCompile(`\b(keccak256|sha256|ripemd160|sha3)\s*\(`)
	chainEntropyRe = regexp.MustCompile(`\b(block\.timestamp|block\.number|block\.difficulty|block\.prevrandao|block\.coinbase)\b|\bblockhash\s*\(`)
)

// weakRandomness flags lines that hash block-producer-influenced chain values.
// Both sub-patterns must co-occur on one physical line; hashing alone or chain
// reads alone are not reported.
type weakRandomness struct{}

func (d *weakRandomness) Meta() model.RuleMeta {
	return model.RuleMeta{
		ID:       "AVA-RANDOM-001",
		Title:    "Randomness derived from manipulable chain state",
		Severity: model.SeverityHigh,
		Tags:     []string{"randomness"},
	}
}

func (d *weakRandomness) Evaluate(ctx context.Context, sc *analysis.ScanContext) ([]model.Finding, error) {
	var findings []model.Finding
	for i, line := range sc.Lines {
		if !hashingRe.MatchString(line) || !chainEntropyRe.MatchString(line) {
			continue
		}
		findings = append(findings, model.Finding{
			Line:           i + 1,
			IssueType:      model.IssueWeakRandomness,
			Description:    "A hashing primitive is applied to a block-producer-influenced chain value (e.g., `block.timestamp`, `blockhash`) on this line, which suggests on-chain randomness derivation.",
			Recommendation: "Chain values can be influenced or predicted by the block producer. Use a verifiable randomness source (e.g., Chainlink VRF) or a commit-reveal scheme with an enforced delay instead.",
		})
	}
	return findings, nil
}
