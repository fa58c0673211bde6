package tools

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// InformationalFinding is a compiler diagnostic relayed alongside the report.
type InformationalFinding struct {
	FindingType string `json:"finding_type"`
	Message     string `json:"message"`
}

// SlitherReport relays the analyzer output untouched: the raw JSON report
// plus any compiler warnings scraped from stderr. The worker never interprets
// the report body.
type SlitherReport struct {
	InformationalFindings []InformationalFinding `json:"informational_findings"`
	Report                json.RawMessage        `json:"slither_report"`
}

// RunSlither writes source to a uuid-named temp contract, invokes slither
// with a JSON output file, and relays whatever it produced. Temp files are
// removed on return.
func RunSlither(ctx context.Context, source string) (SlitherReport, error) {
	id := uuid.New().String()
	contractPath := filepath.Join(os.TempDir(), id+".sol")
	reportPath := filepath.Join(os.TempDir(), id+".json")
	if err := os.WriteFile(contractPath, []byte(source), 0o600); err != nil {
		return SlitherReport{}, fmt.Errorf("write temp contract: %w", err)
	}
	defer os.Remove(contractPath)
	defer os.Remove(reportPath)

	cmd := exec.CommandContext(ctx, "python3", "-m", "slither", contractPath, "--json", reportPath)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	// Slither exits nonzero when it reports findings; the output file is the
	// success signal, not the exit code.
	_ = cmd.Run()

	var warnings []InformationalFinding
	for _, line := range strings.Split(stderr.String(), "\n") {
		if strings.Contains(line, "Warning:") {
			warnings = append(warnings, InformationalFinding{
				FindingType: "Compiler Warning",
				Message:     strings.TrimSpace(line),
			})
		}
	}

	raw, err := os.ReadFile(reportPath)
	if err != nil {
		return SlitherReport{}, errors.New("slither failed to produce an output file")
	}
	if !json.Valid(raw) {
		return SlitherReport{}, errors.New("slither produced a malformed JSON report")
	}
	return SlitherReport{InformationalFindings: warnings, Report: raw}, nil
}

// ErrorReport builds the error-shaped report published when the analyzer
// could not run; failures are always reported in-band, never dropped.
func ErrorReport(message string) SlitherReport {
	body, _ := json.Marshal(map[string]any{
		"success": false,
		"error":   message,
		"results": map[string]any{},
	})
	return SlitherReport{
		InformationalFindings: []InformationalFinding{{FindingType: "error", Message: message}},
		Report:                body,
	}
}
