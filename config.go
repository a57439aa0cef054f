package etfperf

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the immutable application configuration: where the two
// source ledgers live, the initially invested cash, and the server
// listen address.
type Config struct {
	PricesFile       string  `yaml:"prices_file"`
	TransactionsFile string  `yaml:"transactions_file"`
	Investment       float64 `yaml:"investment"`
	Listen           string  `yaml:"listen"`
}

// DefaultConfig returns the configuration matching the conventional
// file names and the default initial investment.
func DefaultConfig() Config {
	return Config{
		PricesFile:       "px_etf.csv",
		TransactionsFile: "tx_etf.csv",
		Investment:       1_000_000,
		Listen:           ":8000",
	}
}

// LoadConfig reads a YAML configuration file on top of the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	content, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("could not read config file %q: %w", path, err)
	}
	if err := yaml.Unmarshal(content, &cfg); err != nil {
		return cfg, fmt.Errorf("could not parse config file %q: %w", path, err)
	}
	if cfg.Investment < 0 {
		return cfg, InvalidArgumentError{Reason: fmt.Sprintf("negative investment %v", cfg.Investment)}
	}
	return cfg, nil
}
