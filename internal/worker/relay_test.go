package worker

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devansh0703/avalanche-sentinel/internal/config"
	"github.com/devansh0703/avalanche-sentinel/internal/model"
	"github.com/devansh0703/avalanche-sentinel/internal/queue"
	"github.com/devansh0703/avalanche-sentinel/internal/tools"
)

func dequeueRelayResult(t *testing.T, broker queue.Broker, channel string) relayResult {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	payload, err := broker.Dequeue(ctx, channel)
	require.NoError(t, err)
	var result relayResult
	require.NoError(t, json.Unmarshal([]byte(payload), &result))
	return result
}

func TestRelayPublishesAnalyzerReport(t *testing.T) {
	broker := queue.NewMemory()
	cfg := config.Default()
	r := NewRelay(broker, cfg, hclog.NewNullLogger())
	r.run = func(ctx context.Context, source string) (tools.SlitherReport, error) {
		return tools.SlitherReport{Report: json.RawMessage(`{"success":true,"results":{}}`)}, nil
	}

	job, _ := json.Marshal(model.AnalysisJob{JobID: "relay-1", SourceCode: "contract A {}"})
	require.NoError(t, broker.Publish(context.Background(), cfg.RelayChannel, string(job)))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- r.Run(ctx) }()

	result := dequeueRelayResult(t, broker, cfg.ResultsChannel)
	cancel()
	require.NoError(t, <-done)

	assert.Equal(t, "relay-1", result.JobID)
	assert.Equal(t, cfg.RelayName, result.WorkerName)
	assert.JSONEq(t, `{"success":true,"results":{}}`, string(result.Output.Report))
}

func TestRelayPublishesErrorReportOnToolFailure(t *testing.T) {
	broker := queue.NewMemory()
	cfg := config.Default()
	r := NewRelay(broker, cfg, hclog.NewNullLogger())
	r.run = func(ctx context.Context, source string) (tools.SlitherReport, error) {
		return tools.SlitherReport{}, errors.New("slither failed to produce an output file")
	}

	job, _ := json.Marshal(model.AnalysisJob{JobID: "relay-2", SourceCode: "contract A {}"})
	require.NoError(t, broker.Publish(context.Background(), cfg.RelayChannel, string(job)))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- r.Run(ctx) }()

	result := dequeueRelayResult(t, broker, cfg.ResultsChannel)
	cancel()
	require.NoError(t, <-done)

	require.Len(t, result.Output.InformationalFindings, 1)
	assert.Equal(t, "error", result.Output.InformationalFindings[0].FindingType)
	assert.Contains(t, string(result.Output.Report), "slither failed")
}
