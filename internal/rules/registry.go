package rules

import (
	"context"

	"github.com/devansh0703/avalanche-sentinel/internal/analysis"
	"github.com/devansh0703/avalanche-sentinel/internal/model"
)

// Detector is one independent heuristic rule producing zero or more findings.
// Implementations are pure over the scan context and total for arbitrary
// UTF-8 source; builtins always return a nil error.
type Detector interface {
	Meta() model.RuleMeta
	Evaluate(ctx context.Context, sc *analysis.ScanContext) ([]model.Finding, error)
}

type Registry struct{ detectors []Detector }

// NewRegistry builds the full detector set against the given lookup data.
func NewRegistry(reg Registries) *Registry {
	r := &Registry{}
	r.Register(&reorgSafety{})
	r.Register(&spotPriceOracle{})
	r.Register(&missingTimelock{})
	r.Register(&weakRandomness{})
	r.Register(newStakingPrecompile(reg))
	r.Register(newValidatorDependency(reg))
	r.Register(newPortability(reg))
	r.Register(newSubnetCompat(reg))
	return r
}

func (r *Registry) Register(d Detector) { r.detectors = append(r.detectors, d) }

func (r *Registry) Detectors() []Detector { return r.detectors }

// FilterSeverity returns the detectors whose severity is at or above min,
// in registration order.
func (r *Registry) FilterSeverity(min model.Severity) []Detector {
	var out []Detector
	for _, d := range r.detectors {
		if model.SeverityGTE(d.Meta().Severity, min) {
			out = append(out, d)
		}
	}
	return out
}

// Run evaluates every detector in registration order and folds the findings.
// Detectors are order-insensitive and share no state, but one job is
// evaluated on a single goroutine; scaling out happens across competing
// worker processes, not inside an evaluation.
func (r *Registry) Run(ctx context.Context, sc *analysis.ScanContext) []model.Finding {
	var out []model.Finding
	for _, d := range r.detectors {
		fs, err := d.Evaluate(ctx, sc)
		if err != nil {
			continue
		}
		out = append(out, fs...)
	}
	return out
}
