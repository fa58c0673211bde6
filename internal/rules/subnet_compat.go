package rules

import (
	"context"
	"fmt"

	"github.com/devansh0703/avalanche-sentinel/internal/analysis"
	"github.com/devansh0703/avalanche-sentinel/internal/model"
)

// subnetCompat checks the source against the job's deployment-target
// metadata: optional precompiles referenced but not enabled in the target
// genesis, and a coarse deployment-cost estimate against the block gas
// limit. Inert when the job carries no subnet context.
type subnetCompat struct {
	optional   []addressMatcher
	deployCost uint64
}

func newSubnetCompat(reg Registries) *subnetCompat {
	return &subnetCompat{
		optional:   compileAddresses(reg.OptionalPrecompiles),
		deployCost: reg.SimulatedDeployCost,
	}
}

func (d *subnetCompat) Meta() model.RuleMeta {
	return model.RuleMeta{
		ID:       "AVA-SUBNET-001",
		Title:    "Target subnet compatibility checks",
		Severity: model.SeverityHigh,
		Tags:     []string{"subnet", "precompile"},
	}
}

func (d *subnetCompat) Evaluate(ctx context.Context, sc *analysis.ScanContext) ([]model.Finding, error) {
	if sc.Subnet == nil {
		return nil, nil
	}
	var findings []model.Finding
	for i, line := range sc.Lines {
		for _, p := range d.optional {
			if !p.re.MatchString(line) {
				continue
			}
			if sc.Subnet.PrecompileEnabled(p.addr) {
				continue
			}
			findings = append(findings, model.Finding{
				Line:           i + 1,
				IssueType:      model.IssuePrecompileMismatch,
				Description:    fmt.Sprintf("The source references the %s precompile (%s), which is not enabled on the target subnet.", p.name, p.addr),
				Recommendation: "Enable the precompile in the subnet genesis `precompiles` section, or guard the call so the contract stays functional on subnets without it.",
			})
		}
	}
	// Not a gas profile: a fixed stand-in cost compared against the genesis
	// limit, enough to catch limits that no deployment could fit under.
	if sc.Subnet.GasLimit > 0 && d.deployCost > sc.Subnet.GasLimit {
		findings = append(findings, model.Finding{
			Line:           0,
			IssueType:      model.IssueGasLimit,
			Description:    fmt.Sprintf("Estimated deployment cost (~%d gas) exceeds the target subnet block gas limit (%d).", d.deployCost, sc.Subnet.GasLimit),
			Recommendation: "Raise the `gasLimit` in the subnet genesis fee configuration, or split the contract so deployment fits within a single block.",
		})
	}
	return findings, nil
}
