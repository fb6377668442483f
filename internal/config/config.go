package config

import (
	"fmt"
	"log/slog"
	"net"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	DefaultPort       = "6379"
	DefaultLogLevel   = "info"
	DefaultListenAddr = ":" + DefaultPort
)

type ServerConfig struct {
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	LogLevel string `yaml:"log_level"`
}

// Load reads the YAML file at path when one is given, applies environment
// overrides, then fills defaults. Flag handling stays in cmd.
func Load(path string) (*ServerConfig, error) {
	var cfg ServerConfig

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	applyEnvOverrides(&cfg)
	applyDefaults(&cfg)

	return &cfg, nil
}

func applyEnvOverrides(cfg *ServerConfig) {
	if v := os.Getenv("MINIREDIS_HOST"); v != "" {
		cfg.Host = v
	}
	if v := os.Getenv("MINIREDIS_PORT"); v != "" {
		cfg.Port = v
	}
	if v := os.Getenv("MINIREDIS_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}

func applyDefaults(cfg *ServerConfig) {
	if cfg.Port == "" {
		cfg.Port = DefaultPort
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
}

func (c *ServerConfig) ListenAddr() string {
	return FormatHostPort(c.Host, c.Port)
}

// ApplyOverrides layers flag values over the loaded config. Empty values
// leave the loaded ones in place; a non-empty listen address wins over both
// the file and the environment.
func (c *ServerConfig) ApplyOverrides(listenAddr, logLevel string) error {
	if listenAddr != "" {
		host, port, err := net.SplitHostPort(listenAddr)
		if err != nil {
			return fmt.Errorf("parse listen address: %w", err)
		}
		c.Host = host
		c.Port = port
	}
	if logLevel != "" {
		c.LogLevel = logLevel
	}
	return nil
}

// ParseLevel maps a config log level onto a slog level. Unknown values fall
// back to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// FormatHostPort brackets IPv6 literals.
func FormatHostPort(host, port string) string {
	ip := net.ParseIP(host)
	if ip != nil && ip.To4() == nil {
		return fmt.Sprintf("[%s]:%s", host, port)
	}
	return fmt.Sprintf("%s:%s", host, port)
}
