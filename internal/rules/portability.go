package rules

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/devansh0703/avalanche-sentinel/internal/analysis"
	"github.com/devansh0703/avalanche-sentinel/internal/model"
)

// lineRule is one per-line pattern check declared as data: a pattern, a tag,
// and the fixed report texts. The portability detector is a table of these
// plus the environment-specific address registry.
type lineRule struct {
	match          *regexp.Regexp
	issueType      string
	description    string
	recommendation string
}

var portabilityRules = []lineRule{
	{
		match:          regexp.MustCompile(`\bchainid\b`),
		issueType:      model.IssueChainAssumption,
		description:    "The `chainid` opcode was used.",
		recommendation: "Avoid using `chainid` for core logic. On a new Subnet, this value will be different and may break your contract.",
	},
	{
		match:          regexp.MustCompile(`\bmsg\.value\b`),
		issueType:      model.IssueNativeToken,
		description:    "The `msg.value` keyword was used, assuming a native, value-bearing token.",
		recommendation: "Be aware that many Subnets may use a valueless native token for gas, or may not use a native token at all (e.g., in favor of an ERC20 for fees). Logic relying on `msg.value > 0` may not be portable.",
	},
	{
		match:          regexp.MustCompile(`\.balance\b`),
		issueType:      model.IssueNativeToken,
		description:    "The `.balance` property was used, assuming a native, value-bearing token.",
		recommendation: "Similar to `msg.value`, be aware that the native token on a custom Subnet may not be AVAX and could have different properties. Logic checking `address.balance` might not behave as expected.",
	},
	{
		match:          regexp.MustCompile(`\.call\s*\{\s*gas:`),
		issueType:      model.IssueHardcodedGas,
		description:    "A low-level call with a hardcoded gas amount (`.call{gas: ...}`) was detected.",
		recommendation: "This is a fragile pattern. Gas costs for opcodes can change, and Subnets may have different gas semantics. Avoid hardcoding gas unless absolutely necessary.",
	},
}

// portability runs the chain-portability line rules and the C-Chain-only
// address registry. All checks are independent; one line can raise several.
type portability struct {
	addresses []addressMatcher
}

func newPortability(reg Registries) *portability {
	return &portability{addresses: compileAddresses(reg.CChainAddresses)}
}

func (d *portability) Meta() model.RuleMeta {
	return model.RuleMeta{
		ID:       "AVA-PORTABILITY-001",
		Title:    "Subnet portability hazards",
		Severity: model.SeverityMedium,
		Tags:     []string{"portability"},
	}
}

func (d *portability) Evaluate(ctx context.Context, sc *analysis.ScanContext) ([]model.Finding, error) {
	var findings []model.Finding
	for i, line := range sc.Lines {
		for _, r := range portabilityRules {
			if !r.match.MatchString(line) {
				continue
			}
			findings = append(findings, model.Finding{
				Line:           i + 1,
				IssueType:      r.issueType,
				Description:    r.description,
				Recommendation: r.recommendation,
			})
		}
		lower := strings.ToLower(line)
		for _, a := range d.addresses {
			if !strings.Contains(lower, a.lower) {
				continue
			}
			findings = append(findings, model.Finding{
				Line:           i + 1,
				IssueType:      model.IssueCChainDependency,
				Description:    fmt.Sprintf("A hardcoded address for a known C-Chain protocol (%s) was found.", a.name),
				Recommendation: "This contract will not exist on a new Subnet. Pass protocol addresses in the constructor or a setter function to make your contract portable.",
			})
		}
	}
	return findings, nil
}
