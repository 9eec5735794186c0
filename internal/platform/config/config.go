package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultShutdownTimeout = 10 * time.Second
	defaultLogLevel        = "info"
	defaultLogFormat       = LogFormatJSON
	defaultEmailDomain     = "company.com"
)

// ログ出力形式です。
const (
	LogFormatJSON    = "json"
	LogFormatConsole = "console"
)

// Config はアプリケーション全体の設定を表現します。
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Log      LogConfig      `yaml:"log"`
	Employee EmployeeConfig `yaml:"employee"`
	Seed     SeedConfig     `yaml:"seed"`
}

// ServerConfig は gRPC サーバーに関する設定です。
type ServerConfig struct {
	ListenAddr         string        `yaml:"listen_addr"`
	ShutdownTimeout    time.Duration `yaml:"-"`
	ShutdownTimeoutRaw string        `yaml:"shutdown_timeout"`
}

// LogConfig はロガーの設定です。
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// EmployeeConfig は社員データ生成に関する設定です。
type EmployeeConfig struct {
	EmailDomain string `yaml:"email_domain"`
}

// SeedConfig は起動時に投入するダミー社員の設定です。
type SeedConfig struct {
	Count      int    `yaml:"count"`
	RandomSeed uint64 `yaml:"random_seed"`
}

// Load は指定されたパスから設定ファイルを読み込みます。
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}

	if err := cfg.validateAndNormalize(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validateAndNormalize() error {
	if err := c.Server.validateAndNormalize(); err != nil {
		return err
	}
	if err := c.Log.validateAndNormalize(); err != nil {
		return err
	}

	c.Employee.EmailDomain = strings.TrimSpace(c.Employee.EmailDomain)
	if c.Employee.EmailDomain == "" {
		c.Employee.EmailDomain = defaultEmailDomain
	}
	if strings.Contains(c.Employee.EmailDomain, "@") {
		return fmt.Errorf("config: employee.email_domain must not contain '@'")
	}

	if c.Seed.Count < 0 {
		return fmt.Errorf("config: seed.count must not be negative")
	}

	return nil
}

func (s *ServerConfig) validateAndNormalize() error {
	if s.ListenAddr == "" {
		return fmt.Errorf("config: server.listen_addr must be set")
	}

	timeout, err := parseDurationAllowEmpty(s.ShutdownTimeoutRaw)
	if err != nil {
		return fmt.Errorf("config: server.shutdown_timeout: %w", err)
	}
	if timeout == 0 {
		timeout = defaultShutdownTimeout
	}
	s.ShutdownTimeout = timeout

	return nil
}

func (l *LogConfig) validateAndNormalize() error {
	if l.Level == "" {
		l.Level = defaultLogLevel
	}
	l.Level = strings.ToLower(l.Level)

	switch strings.ToLower(l.Format) {
	case "":
		l.Format = defaultLogFormat
	case LogFormatJSON, LogFormatConsole:
		l.Format = strings.ToLower(l.Format)
	default:
		return fmt.Errorf("config: log.format must be %q or %q", LogFormatJSON, LogFormatConsole)
	}

	return nil
}

func parseDurationAllowEmpty(raw string) (time.Duration, error) {
	if raw == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, err
	}
	return d, nil
}
