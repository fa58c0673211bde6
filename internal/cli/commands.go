package cli

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/devansh0703/avalanche-sentinel/internal/config"
	"github.com/devansh0703/avalanche-sentinel/internal/engine"
	"github.com/devansh0703/avalanche-sentinel/internal/queue"
	"github.com/devansh0703/avalanche-sentinel/internal/worker"
)

func AddCommands(root *cobra.Command) {
	root.AddCommand(newWorkerCmd())
	root.AddCommand(newRelayCmd())
	root.AddCommand(newScanCmd())
	root.AddCommand(newRulesCmd())
}

func newLogger(name string) hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:   name,
		Output: os.Stdout,
		Level:  hclog.Info,
	})
}

// loadConfig merges the discovered config file with any flags set on cmd.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, path, err := config.Load(".")
	if err != nil {
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}
	if cmd.Flags().Changed("redis-addr") {
		cfg.RedisAddr, _ = cmd.Flags().GetString("redis-addr")
	}
	if cmd.Flags().Changed("jobs-channel") {
		cfg.JobsChannel, _ = cmd.Flags().GetString("jobs-channel")
	}
	if cmd.Flags().Changed("results-channel") {
		cfg.ResultsChannel, _ = cmd.Flags().GetString("results-channel")
	}
	if cmd.Flags().Changed("worker-name") {
		cfg.WorkerName, _ = cmd.Flags().GetString("worker-name")
	}
	return cfg, nil
}

func addBrokerFlags(cmd *cobra.Command) {
	cmd.Flags().String("redis-addr", config.Default().RedisAddr, "Redis address host:port")
	cmd.Flags().String("jobs-channel", config.Default().JobsChannel, "List the worker pops jobs from")
	cmd.Flags().String("results-channel", config.Default().ResultsChannel, "List results are pushed to")
	cmd.Flags().String("worker-name", config.Default().WorkerName, "Worker identity tag stamped on results")
}

func newWorkerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "worker",
		Short: "Run the heuristic analysis worker loop",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			logger := newLogger("sentinel.worker")
			broker := queue.NewRedis(cfg.RedisAddr)
			defer broker.Close()
			if err := broker.Ping(cmd.Context()); err != nil {
				return fmt.Errorf("connect redis %s: %w", cfg.RedisAddr, err)
			}
			logger.Info("connected to redis", "addr", cfg.RedisAddr)
			eng := engine.New(cfg.RegistriesOrDefault())
			return worker.New(broker, eng, cfg, logger).Run(cmd.Context())
		},
	}
	addBrokerFlags(cmd)
	return cmd
}

func newRelayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "relay",
		Short: "Run the external analyzer relay worker loop",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("relay-channel") {
				cfg.RelayChannel, _ = cmd.Flags().GetString("relay-channel")
			}
			logger := newLogger("sentinel.relay")
			broker := queue.NewRedis(cfg.RedisAddr)
			defer broker.Close()
			if err := broker.Ping(cmd.Context()); err != nil {
				return fmt.Errorf("connect redis %s: %w", cfg.RedisAddr, err)
			}
			logger.Info("connected to redis", "addr", cfg.RedisAddr)
			return worker.NewRelay(broker, cfg, logger).Run(cmd.Context())
		},
	}
	addBrokerFlags(cmd)
	cmd.Flags().String("relay-channel", config.Default().RelayChannel, "List the relay pops jobs from")
	return cmd
}
