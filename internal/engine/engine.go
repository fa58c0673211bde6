package engine

import (
	"context"

	"github.com/devansh0703/avalanche-sentinel/internal/analysis"
	"github.com/devansh0703/avalanche-sentinel/internal/model"
	"github.com/devansh0703/avalanche-sentinel/internal/rules"
)

type Engine struct {
	registry *rules.Registry
}

func New(reg rules.Registries) *Engine {
	return &Engine{registry: rules.NewRegistry(reg)}
}

func Default() *Engine { return New(rules.DefaultRegistries()) }

// Evaluate runs the full detector set over one job and returns the
// deduplicated findings. It is a pure function of the job: no state survives
// between calls, and any UTF-8 source yields a (possibly empty) result.
func (e *Engine) Evaluate(ctx context.Context, job model.AnalysisJob) []model.Finding {
	sc := analysis.NewScanContext(job)
	return Dedupe(e.registry.Run(ctx, sc))
}

func (e *Engine) Registry() *rules.Registry { return e.registry }
