package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/devansh0703/avalanche-sentinel/internal/config"
	"github.com/devansh0703/avalanche-sentinel/internal/model"
	"github.com/devansh0703/avalanche-sentinel/internal/queue"
	"github.com/devansh0703/avalanche-sentinel/internal/tools"
)

type relayResult struct {
	JobID      string              `json:"job_id"`
	WorkerName string              `json:"worker_name"`
	Output     tools.SlitherReport `json:"output"`
}

// Relay drains its own jobs channel and hands each submission to the
// external analyzer, publishing its report or failure reason verbatim. The
// analyzer is a black box; nothing here interprets its findings.
type Relay struct {
	broker queue.Broker
	cfg    config.Config
	log    hclog.Logger

	// run is swapped in tests; defaults to tools.RunSlither.
	run func(ctx context.Context, source string) (tools.SlitherReport, error)
}

func NewRelay(broker queue.Broker, cfg config.Config, log hclog.Logger) *Relay {
	return &Relay{broker: broker, cfg: cfg, log: log, run: tools.RunSlither}
}

func (r *Relay) Run(ctx context.Context) error {
	r.log.Info("listening for jobs", "channel", r.cfg.RelayChannel)
	for {
		payload, err := r.broker.Dequeue(ctx, r.cfg.RelayChannel)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil
			}
			return fmt.Errorf("dequeue: %w", err)
		}
		if err := r.handle(ctx, payload); err != nil {
			return err
		}
	}
}

func (r *Relay) handle(ctx context.Context, payload string) error {
	var job model.AnalysisJob
	if err := json.Unmarshal([]byte(payload), &job); err != nil {
		r.log.Error("dropping malformed job payload", "error", err)
		return nil
	}
	r.log.Info("processing job", "jobId", job.JobID)

	tctx, cancel := context.WithTimeout(ctx, time.Duration(r.cfg.SlitherTimeoutMs)*time.Millisecond)
	report, err := r.run(tctx, job.SourceCode)
	cancel()
	if err != nil {
		// Tool failures are published in-band, never silently dropped.
		r.log.Warn("analyzer failed, publishing error report", "jobId", job.JobID, "error", err)
		report = tools.ErrorReport(err.Error())
	}

	body, err := json.Marshal(relayResult{JobID: job.JobID, WorkerName: r.cfg.RelayName, Output: report})
	if err != nil {
		return fmt.Errorf("marshal result for job %s: %w", job.JobID, err)
	}
	if err := r.broker.Publish(ctx, r.cfg.ResultsChannel, string(body)); err != nil {
		return fmt.Errorf("publish result for job %s: %w", job.JobID, err)
	}
	r.log.Info("published result", "jobId", job.JobID)
	return nil
}
