package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/spf13/pflag"
)

type HubFlags struct {
	LogLevel     string   `env:"LOGLEVEL"`
	ScenarioFile string   `env:"SCENARIO_FILE"`
	AuditFile    string   `env:"AUDIT_FILE"`
	AuditURL     string   `env:"AUDIT_URL"`
	PollInterval int      `env:"POLL_INTERVAL"`
	MaxRetries   int      `env:"MAX_RETRIES"`
	RetryDelays  []string `env:"RETRY_DELAYS" envSeparator:","`
}

// ParseHubConfig собирает конфигурацию: значения по умолчанию, затем флаги, затем переменные окружения
func ParseHubConfig(args []string) (*HubFlags, error) {
	var cfg HubFlags

	setDefaultHubFlags(&cfg)

	if err := parseHubFlags(&cfg, args); err != nil {
		return nil, err
	}

	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment variables: %w", err)
	}

	if cfg.PollInterval < 0 {
		return nil, fmt.Errorf("poll interval must not be negative: %d", cfg.PollInterval)
	}

	return &cfg, nil
}

func setDefaultHubFlags(cfg *HubFlags) {
	cfg.LogLevel = "info"
	cfg.MaxRetries = 3
	cfg.RetryDelays = []string{"1s", "3s", "5s"}
}

func parseHubFlags(cfg *HubFlags, args []string) error {
	flags := pflag.NewFlagSet("hub", pflag.ContinueOnError)

	flags.StringVarP(&cfg.LogLevel, "loglevel", "l", cfg.LogLevel, "Logger level")
	flags.StringVarP(&cfg.ScenarioFile, "scenario", "s", cfg.ScenarioFile, "Path to YAML scenario, built-in scenario if empty")
	flags.StringVarP(&cfg.AuditFile, "audit-file", "f", cfg.AuditFile, "Path to file for metric update audit")
	flags.StringVarP(&cfg.AuditURL, "audit-url", "u", cfg.AuditURL, "URL of audit receiver")
	flags.IntVarP(&cfg.PollInterval, "poll", "p", cfg.PollInterval, "Host sensor polling interval in sec, 0 disables polling")
	flags.IntVarP(&cfg.MaxRetries, "max-retries", "m", cfg.MaxRetries, "Maximum number of retry attempts")
	flags.StringSliceVarP(&cfg.RetryDelays, "retry-delays", "d", cfg.RetryDelays, "Retry delays between attempts")

	if err := flags.Parse(args); err != nil {
		return fmt.Errorf("error parsing command-line flags: %w", err)
	}

	if flags.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", flags.Args())
	}

	return nil
}

func (c *HubFlags) GetRetryDelaysAsDuration() ([]time.Duration, error) {
	delays := make([]time.Duration, len(c.RetryDelays))
	for i, delayStr := range c.RetryDelays {
		delay, err := time.ParseDuration(delayStr)
		if err != nil {
			return nil, fmt.Errorf("invalid duration format '%s': %w", delayStr, err)
		}
		delays[i] = delay
	}
	return delays, nil
}

func (c *HubFlags) GetPollInterval() time.Duration {
	return time.Duration(c.PollInterval) * time.Second
}
