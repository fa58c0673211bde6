package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/devansh0703/avalanche-sentinel/internal/config"
	"github.com/devansh0703/avalanche-sentinel/internal/engine"
	"github.com/devansh0703/avalanche-sentinel/internal/model"
	"github.com/devansh0703/avalanche-sentinel/internal/queue"
)

// Worker drains one jobs channel: pop, evaluate, publish, repeat. One job is
// fully processed before the next pop; scaling out means more worker
// processes competing on the same channel, never concurrency inside one.
type Worker struct {
	broker queue.Broker
	engine *engine.Engine
	cfg    config.Config
	log    hclog.Logger
}

func New(broker queue.Broker, eng *engine.Engine, cfg config.Config, log hclog.Logger) *Worker {
	return &Worker{broker: broker, engine: eng, cfg: cfg, log: log}
}

// Run loops until the context is canceled or the transport fails. Transport
// errors are fatal to the loop; there is no per-job retry.
func (w *Worker) Run(ctx context.Context) error {
	w.log.Info("listening for jobs", "channel", w.cfg.JobsChannel)
	for {
		payload, err := w.broker.Dequeue(ctx, w.cfg.JobsChannel)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil
			}
			return fmt.Errorf("dequeue: %w", err)
		}
		if err := w.handle(ctx, payload); err != nil {
			return err
		}
	}
}

// handle processes exactly one payload. A payload that does not parse is
// logged and dropped with no result; a publish failure is fatal.
func (w *Worker) handle(ctx context.Context, payload string) error {
	var job model.AnalysisJob
	if err := json.Unmarshal([]byte(payload), &job); err != nil {
		w.log.Error("dropping malformed job payload", "error", err)
		return nil
	}
	w.log.Info("processing job", "jobId", job.JobID)

	findings := w.engine.Evaluate(ctx, job)
	if findings == nil {
		// An empty finding set is a successful result and serializes as [].
		findings = []model.Finding{}
	}
	result := model.AnalysisResult{
		JobID:      job.JobID,
		WorkerName: w.cfg.WorkerName,
		Output:     findings,
	}
	body, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("marshal result for job %s: %w", job.JobID, err)
	}
	if err := w.broker.Publish(ctx, w.cfg.ResultsChannel, string(body)); err != nil {
		return fmt.Errorf("publish result for job %s: %w", job.JobID, err)
	}
	w.log.Info("published result", "jobId", job.JobID, "findings", len(findings))
	return nil
}
