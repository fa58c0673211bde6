package rules

import (
	"context"
	"regexp"

	"github.com/devansh0703/avalanche-sentinel/internal/analysis"
	"github.com/devansh0703/avalanche-sentinel/internal/model"
)

var (
	spotPriceRe = regexp.MustCompile(`(?i)\.(getReserves|token0|token1|balanceOf)\s*\(\s*\)\s*(?:/\s*[a-zA-Z0-9_]+\.(getReserves|token0|token1|balanceOf)\s*\(\s*\))?`)

	// Contracts declaring themselves as price feeds are exempt file-wide.
	priceFeedDeclRe = regexp.MustCompile(`contract\s+[a-zA-Z0-9_]+\s+(?:is|implements)\s+(?:AggregatorV3Interface|Chainlink|PriceOracle)`)
)

// spotPriceOracle flags single-transaction spot price reads from DEX
// reserves or balances.
type spotPriceOracle struct{}

func (d *spotPriceOracle) Meta() model.RuleMeta {
	return model.RuleMeta{
		ID:       "AVA-ORACLE-001",
		Title:    "Spot price read from DEX reserves",
		Severity: model.SeverityHigh,
		Tags:     []string{"oracle", "consensus"},
	}
}

func (d *spotPriceOracle) Evaluate(ctx context.Context, sc *analysis.ScanContext) ([]model.Finding, error) {
	if priceFeedDeclRe.MatchString(sc.Source) {
		return nil, nil
	}
	var findings []model.Finding
	for i, line := range sc.Lines {
		if !spotPriceRe.MatchString(line) {
			continue
		}
		findings = append(findings, model.Finding{
			Line:           i + 1,
			IssueType:      model.IssueSpotPrice,
			Description:    "Direct read of spot price from a DEX (e.g., `getReserves()`) detected. This is vulnerable to flash loan manipulation on slower-finality chains.",
			Recommendation: "Always use a Time-Weighted Average Price (TWAP) oracle or a decentralized oracle network (like Chainlink) for robust price feeds, especially when interacting with chains susceptible to reorgs.",
		})
	}
	return findings, nil
}
