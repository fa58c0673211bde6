package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/devansh0703/avalanche-sentinel/internal/rules"
)

const fileName = ".sentinel.json"

type Config struct {
	RedisAddr        string `json:"redisAddr"`
	JobsChannel      string `json:"jobsChannel"`
	RelayChannel     string `json:"relayChannel"`
	ResultsChannel   string `json:"resultsChannel"`
	WorkerName       string `json:"workerName"`
	RelayName        string `json:"relayName"`
	SlitherTimeoutMs int    `json:"slitherTimeoutMs"`

	// Registries overrides the built-in pattern registries when present.
	Registries *rules.Registries `json:"registries,omitempty"`
}

func Default() Config {
	return Config{
		RedisAddr:        "127.0.0.1:6379",
		JobsChannel:      "sentinel_jobs",
		RelayChannel:     "core_security_jobs",
		ResultsChannel:   "sentinel_results",
		WorkerName:       "HeuristicSentinelWorker",
		RelayName:        "CoreSecurityWorker",
		SlitherTimeoutMs: 120_000,
	}
}

// Load searches upward from startDir for a config file and overlays it on
// the defaults. Missing file is not an error; defaults cover everything.
func Load(startDir string) (Config, string, error) {
	cfg := Default()
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return cfg, "", err
	}
	for {
		candidate := filepath.Join(dir, fileName)
		if _, err := os.Stat(candidate); err == nil {
			b, err := os.ReadFile(candidate)
			if err != nil {
				return cfg, candidate, err
			}
			if err := json.Unmarshal(b, &cfg); err != nil {
				return cfg, candidate, err
			}
			return cfg, candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return cfg, "", nil
}

func (c Config) RegistriesOrDefault() rules.Registries {
	if c.Registries != nil {
		return *c.Registries
	}
	return rules.DefaultRegistries()
}
