package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Transcript TranscriptConfig `yaml:"transcript"`
	Mode       string           `yaml:"mode"` // "simulator" or "hardware"
	Bridge     BridgeConfig     `yaml:"bridge"`
	Pushover   PushoverConfig   `yaml:"pushover"`
	Log        LogConfig        `yaml:"log"`
}

type TranscriptConfig struct {
	Source    string `yaml:"source"` // "http" or "file"
	HTTPAddr  string `yaml:"http_addr"`
	FileDir   string `yaml:"file_dir"`
	AuthToken string `yaml:"auth_token"`
}

type BridgeConfig struct {
	Host        string `yaml:"host"`
	Port        int    `yaml:"port"`
	DialTimeout string `yaml:"dial_timeout"`
}

type PushoverConfig struct {
	Token   string `yaml:"token"`
	UserKey string `yaml:"user_key"`
	Enabled bool   `yaml:"enabled"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.setDefaults()

	return &cfg, nil
}

func (c *Config) setDefaults() {
	if c.Transcript.Source == "" {
		c.Transcript.Source = "http"
	}
	if c.Transcript.HTTPAddr == "" {
		c.Transcript.HTTPAddr = ":8080"
	}
	if c.Transcript.FileDir == "" {
		c.Transcript.FileDir = "./transcripts"
	}
	if c.Mode == "" {
		c.Mode = "simulator"
	}
	if c.Bridge.Host == "" {
		c.Bridge.Host = "127.0.0.1"
	}
	if c.Bridge.Port == 0 {
		c.Bridge.Port = 8765
	}
	if c.Bridge.DialTimeout == "" {
		c.Bridge.DialTimeout = "3s"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

// BridgeAddr returns the bridge endpoint in host:port form.
func (c *Config) BridgeAddr() string {
	return fmt.Sprintf("%s:%d", c.Bridge.Host, c.Bridge.Port)
}

// BridgeDialTimeout parses the configured dial timeout, falling back to 3s.
func (c *Config) BridgeDialTimeout() time.Duration {
	d, err := time.ParseDuration(c.Bridge.DialTimeout)
	if err != nil || d <= 0 {
		return 3 * time.Second
	}
	return d
}
