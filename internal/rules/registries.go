package rules

import (
	"regexp"
	"strings"
)

// AddressEntry names a protocol deployment or precompile pinned to one
// environment.
type AddressEntry struct {
	Address string `json:"address"`
	Name    string `json:"name"`
}

// Registries is the fixed lookup data the detectors match against. It is
// injected when the registry is built so tests can substitute synthetic
// entries; DefaultRegistries reflects the deployed pipeline.
type Registries struct {
	StakingPrecompiles  []AddressEntry `json:"stakingPrecompiles"`
	OptionalPrecompiles []AddressEntry `json:"optionalPrecompiles"`
	CChainAddresses     []AddressEntry `json:"cchainAddresses"`

	// SimulatedDeployCost is a deliberately coarse stand-in for a gas
	// profile of a contract deployment, compared against the target
	// subnet's block gas limit.
	SimulatedDeployCost uint64 `json:"simulatedDeployCost"`
}

func DefaultRegistries() Registries {
	return Registries{
		StakingPrecompiles: []AddressEntry{
			{Address: "0x0100000000000000000000000000000000000000", Name: "P-Chain Handler"},
		},
		OptionalPrecompiles: []AddressEntry{
			{Address: "0x0200000000000000000000000000000000000000", Name: "Contract Deployer Allow List"},
			{Address: "0x0200000000000000000000000000000000000001", Name: "Native Minter"},
			{Address: "0x0200000000000000000000000000000000000002", Name: "Tx Allow List"},
			{Address: "0x0200000000000000000000000000000000000003", Name: "Fee Config Manager"},
		},
		CChainAddresses: []AddressEntry{
			{Address: "0x9Ad6C38BE94206cA50bb0d90783181662f0Cfa10", Name: "Trader Joe V1 Router"},
			{Address: "0x60aE616a2155Ee3d9A68541Ba4544862310933d4", Name: "Trader Joe V2 Router"},
			{Address: "0xE54Ca86531e17Ef3616d22Ca28b0D458b6C89106", Name: "Pangolin Router"},
			{Address: "0xd00ae08403B959254dbA1188b832b412A4461b95", Name: "Benqi Lending Market (qiAVAX)"},
			{Address: "0x2b2C81e08f1Af8835a78Bb2A90AE924ACE0eA4be", Name: "Aave V2 Lending Pool"},
		},
		SimulatedDeployCost: 5_000_000,
	}
}

// addressMatcher is an AddressEntry compiled for word-bounded,
// case-insensitive matching. Compiled once when the registry is built, not
// per line.
type addressMatcher struct {
	re    *regexp.Regexp
	name  string
	addr  string
	lower string
}

func compileAddresses(entries []AddressEntry) []addressMatcher {
	out := make([]addressMatcher, 0, len(entries))
	for _, e := range entries {
		out = append(out, addressMatcher{
			re:    regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(e.Address) + `\b`),
			name:  e.Name,
			addr:  e.Address,
			lower: strings.ToLower(e.Address),
		})
	}
	return out
}
