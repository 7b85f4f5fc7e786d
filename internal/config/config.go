package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/nikita55612/ftxCollector/internal/logger"
	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigPath = "./config.yaml"
	DefaultBaseURL    = "https://ftx.com/api"
)

// Exchange - параметры подключения к бирже. Ключи API в файл не попадают,
// они читаются из окружения.
type Exchange struct {
	BaseURL    string        `yaml:"base_url"`
	Timeout    time.Duration `yaml:"timeout"`
	Subaccount string        `yaml:"subaccount"`
	Debug      bool          `yaml:"debug"`
}

// Collect - что и как часто собирает сборщик
type Collect struct {
	Markets      []string      `yaml:"markets"`
	Resolution   time.Duration `yaml:"resolution"`
	Limit        int           `yaml:"limit"`
	Lookback     time.Duration `yaml:"lookback"`
	PollInterval time.Duration `yaml:"poll_interval"`
}

type Config struct {
	Exchange    Exchange      `yaml:"exchange"`
	Log         logger.Config `yaml:"log"`
	Collect     Collect       `yaml:"collect"`
	MetricsAddr string        `yaml:"metrics_addr"`
}

func DefaultConfig() *Config {
	return &Config{
		Exchange: Exchange{
			BaseURL: DefaultBaseURL,
			Timeout: 10 * time.Second,
		},
		Log: logger.DefaultConfig(),
		Collect: Collect{
			Markets:    []string{"SOL-PERP"},
			Resolution: 5 * time.Minute,
			Limit:      100,
		},
	}
}

// LoadConfig читает YAML-конфигурацию поверх значений по умолчанию.
// Пустой path означает DefaultConfigPath, если такой файл существует.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		if _, err := os.Stat(DefaultConfigPath); errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		path = DefaultConfigPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	var errs []error
	if c.Exchange.BaseURL == "" {
		errs = append(errs, errors.New("exchange.base_url is required"))
	}
	if c.Exchange.Timeout < 0 {
		errs = append(errs, errors.New("exchange.timeout must not be negative"))
	}
	if c.Collect.Resolution <= 0 || c.Collect.Resolution%time.Second != 0 {
		errs = append(errs, fmt.Errorf("collect.resolution must be a positive whole number of seconds, got %s", c.Collect.Resolution))
	}
	if c.Collect.Limit <= 0 {
		errs = append(errs, fmt.Errorf("collect.limit must be positive, got %d", c.Collect.Limit))
	}
	if c.Collect.Lookback < 0 {
		errs = append(errs, errors.New("collect.lookback must not be negative"))
	}
	if c.Collect.PollInterval < 0 {
		errs = append(errs, errors.New("collect.poll_interval must not be negative"))
	}
	for i, m := range c.Collect.Markets {
		if m == "" {
			errs = append(errs, fmt.Errorf("collect.markets[%d] is empty", i))
		}
	}
	return errors.Join(errs...)
}
