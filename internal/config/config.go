package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"gopkg.in/yaml.v3"

	"github.com/chrisyarbrough/SharpShuffleBag/internal/domain"
)

const defaultConfigPath = "config/config.yaml"

// Config объединяет все аспекты настройки примера.
type Config struct {
	Bag      BagConfig     `yaml:"bag"`
	Sample   SampleConfig  `yaml:"sample"`
	Random   RandomConfig  `yaml:"random"`
	HTTP     HTTPConfig    `yaml:"http"`
	Timeouts TimeoutConfig `yaml:"timeouts"`
	Logging  LoggingConfig `yaml:"logging"`
}

// BagConfig описывает содержимое мешка.
type BagConfig struct {
	Items    []string `yaml:"items" env:"BAG_ITEMS" envSeparator:","`
	Capacity int      `yaml:"capacity" env:"BAG_CAPACITY"`
}

// SampleConfig выбирает пример и его темп.
type SampleConfig struct {
	Mode     domain.SampleMode `yaml:"mode" env:"SAMPLE_MODE"`
	Interval time.Duration     `yaml:"interval" env:"SAMPLE_INTERVAL"`
	MaxDraws int               `yaml:"max_draws" env:"SAMPLE_MAX_DRAWS"`
}

// RandomConfig выбирает генератор и его сид. Нулевой сид означает «сгенерировать».
type RandomConfig struct {
	Source domain.SourceKind `yaml:"source" env:"RANDOM_SOURCE"`
	Seed   uint64            `yaml:"seed" env:"RANDOM_SEED"`
}

// HTTPConfig описывает сервер статуса. Пустой порт отключает сервер.
type HTTPConfig struct {
	Port         string        `yaml:"port" env:"HTTP_PORT"`
	ReadTimeout  time.Duration `yaml:"read_timeout" env:"HTTP_READ_TIMEOUT"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"HTTP_WRITE_TIMEOUT"`
	IdleTimeout  time.Duration `yaml:"idle_timeout" env:"HTTP_IDLE_TIMEOUT"`
}

// TimeoutConfig содержит таймауты.
type TimeoutConfig struct {
	Shutdown time.Duration `yaml:"shutdown" env:"SHUTDOWN_TIMEOUT"`
}

// LoggingConfig описывает формат и место логов.
type LoggingConfig struct {
	Level  string `yaml:"level" env:"LOG_LEVEL"`
	Output string `yaml:"output" env:"LOG_OUTPUT"`
}

// MustLoad загружает конфигурацию из YAML + ENV и паникует при ошибке.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

// Load загружает конфигурацию, отдавая предпочтение пути из CONFIG_PATH.
func Load() (Config, error) {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = defaultConfigPath
	}

	cfg := Config{}
	if err := readYAML(path, &cfg); err != nil {
		return Config{}, err
	}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env vars: %w", err)
	}
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func readYAML(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("config file %s not found", path)
		}
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("decode config yaml: %w", err)
	}
	return nil
}

// Validate проверяет значения, которые нельзя заменить значениями по умолчанию.
func (c Config) Validate() error {
	switch c.Sample.Mode {
	case domain.SampleModeCradle, domain.SampleModeSpawner:
	default:
		return fmt.Errorf("%w: %q", domain.ErrUnknownSampleMode, c.Sample.Mode)
	}
	switch c.Random.Source {
	case domain.SourcePCG, domain.SourceMT19937, domain.SourcePlatform:
	default:
		return fmt.Errorf("%w: %q", domain.ErrUnknownSource, c.Random.Source)
	}
	if len(c.Bag.Items) == 0 {
		return domain.ErrNoItems
	}
	if c.Sample.MaxDraws < 0 {
		return fmt.Errorf("sample max_draws must not be negative, got %d", c.Sample.MaxDraws)
	}
	return nil
}

// normalize устанавливает значения по умолчанию для всех полей конфигурации, если они не заданы.
func (c *Config) normalize() {
	// Мешок
	items := c.Bag.Items[:0]
	for _, item := range c.Bag.Items {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	c.Bag.Items = items
	if c.Bag.Capacity < len(c.Bag.Items) {
		c.Bag.Capacity = len(c.Bag.Items)
	}
	// Пример
	c.Sample.Mode = domain.SampleMode(strings.ToLower(string(c.Sample.Mode)))
	if c.Sample.Mode == "" {
		c.Sample.Mode = domain.SampleModeCradle
	}
	if c.Sample.Interval <= 0 {
		c.Sample.Interval = 500 * time.Millisecond
	}
	// Генератор
	c.Random.Source = domain.SourceKind(strings.ToLower(string(c.Random.Source)))
	if c.Random.Source == "" {
		c.Random.Source = domain.SourcePCG
	}
	// HTTP настройки
	if c.HTTP.ReadTimeout <= 0 {
		c.HTTP.ReadTimeout = 5 * time.Second
	}
	if c.HTTP.WriteTimeout <= 0 {
		c.HTTP.WriteTimeout = 5 * time.Second
	}
	if c.HTTP.IdleTimeout <= 0 {
		c.HTTP.IdleTimeout = 5 * time.Minute
	}
	if c.Timeouts.Shutdown <= 0 {
		c.Timeouts.Shutdown = 10 * time.Second
	}
	// Логирование
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Output == "" {
		c.Logging.Output = "stdout"
	}
}
