package analysis

import "github.com/devansh0703/avalanche-sentinel/internal/model"

// ScanContext carries everything detectors may consult during one
// evaluation: the raw source, its line-indexed view and the optional
// deployment-target metadata. Built once per job and discarded afterwards;
// detectors never mutate it.
type ScanContext struct {
	Source string
	Lines  []string
	Subnet *model.SubnetContext
}

func NewScanContext(job model.AnalysisJob) *ScanContext {
	return &ScanContext{
		Source: job.SourceCode,
		Lines:  Lines(job.SourceCode),
		Subnet: job.SubnetContext,
	}
}
