package model

import "strings"

type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

func ParseSeverity(s string) Severity {
	switch s {
	case string(SeverityCritical):
		return SeverityCritical
	case string(SeverityHigh):
		return SeverityHigh
	case string(SeverityMedium):
		return SeverityMedium
	default:
		return SeverityLow
	}
}

func SeverityGTE(a, b Severity) bool {
	order := map[Severity]int{SeverityLow: 1, SeverityMedium: 2, SeverityHigh: 3, SeverityCritical: 4}
	return order[a] >= order[b]
}

type RuleMeta struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Severity Severity `json:"severity"`
	Tags     []string `json:"tags"`
}

// Issue type tags. The set is closed: every finding carries exactly one of
// these, and the description/recommendation texts are fixed per tag.
const (
	IssueReorgSafety        = "Reorg Safety Hazard (Implicit Finality Assumption)"
	IssueSpotPrice          = "Spot Price Oracle Hazard"
	IssueMultiTxDependency  = "Multi-Transaction Dependency Hazard"
	IssueWeakRandomness     = "Unsafe On-Chain Randomness"
	IssuePrecompile         = "P-Chain Precompile Interaction"
	IssueMissingPayable     = "Missing Payable Modifier"
	IssueUncheckedReturn    = "Unchecked Return Value"
	IssueWeakAccessControl  = "Weak Access Control"
	IssueValidatorDep       = "Hardcoded Validator Dependency"
	IssueStrandedRewards    = "Missing Reward Withdrawal"
	IssueChainAssumption    = "Hardcoded Chain Assumption"
	IssueNativeToken        = "Native Token Assumption"
	IssueHardcodedGas       = "Hardcoded Gas Amount"
	IssueCChainDependency   = "C-Chain Dependency"
	IssuePrecompileMismatch = "Precompile Availability Mismatch"
	IssueGasLimit           = "Genesis Gas Limit Violation"
)

// Finding is one reported issue. Line is 1-based; 0 means the finding applies
// to the whole file. Two findings are the same issue iff all four fields are
// equal, which is what the deduplication step keys on.
type Finding struct {
	Line           int    `json:"line"`
	IssueType      string `json:"issue_type"`
	Description    string `json:"description"`
	Recommendation string `json:"recommendation"`
}

// SubnetContext is optional deployment-target metadata attached to a job. It
// only influences the subnet-compatibility checks; every other detector
// ignores it.
type SubnetContext struct {
	GasLimit           uint64          `json:"gas_limit,omitempty"`
	EnabledPrecompiles map[string]bool `json:"enabled_precompiles,omitempty"`
}

// PrecompileEnabled reports whether addr is on the target's allow-list.
// Addresses are keyed lowercase on the wire.
func (c *SubnetContext) PrecompileEnabled(addr string) bool {
	if c == nil {
		return false
	}
	return c.EnabledPrecompiles[strings.ToLower(addr)]
}

// AnalysisJob is one dequeued submission. Immutable once parsed; the worker
// owns it for the duration of a single evaluation.
type AnalysisJob struct {
	JobID         string         `json:"job_id"`
	SourceCode    string         `json:"source_code"`
	SubnetContext *SubnetContext `json:"subnet_context,omitempty"`
}

type AnalysisResult struct {
	JobID      string    `json:"job_id"`
	WorkerName string    `json:"worker_name"`
	Output     []Finding `json:"output"`
}
