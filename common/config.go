package common

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is where the probe looks for its configuration unless
// a path is given with -c/--config.
const DefaultConfigPath = "/usr/local/etc/check_rabbitmq_queues.yml"

const (
	DefaultHost     = "localhost"
	DefaultPort     = 15672
	DefaultUsername = "guest"
	DefaultPassword = "guest"
	DefaultVhost    = "/"
	DefaultTimeout  = 30 * time.Second
)

// ErrConfigMissing marks a configuration file that does not exist on disk.
// The entry point maps it to its own exit code so a monitoring supervisor
// can tell a misconfigured probe apart from an unhealthy broker.
var ErrConfigMissing = errors.New("configuration file does not exist")

// QueueThreshold is the (warning, critical) message-count pair configured
// per queue. An inverted pair (warning > critical) is accepted but makes
// the warning branch unreachable; LoadConfig logs it.
type QueueThreshold struct {
	Warning  int `mapstructure:"warning" yaml:"warning"`
	Critical int `mapstructure:"critical" yaml:"critical"`
}

// Config holds the connection settings and the per-queue thresholds.
type Config struct {
	Host     string        `mapstructure:"host"`
	Port     int           `mapstructure:"port"`
	Username string        `mapstructure:"username"`
	Password string        `mapstructure:"password"`
	Vhost    string        `mapstructure:"vhost"`
	Timeout  time.Duration `mapstructure:"timeout"`

	Queues map[string]QueueThreshold `mapstructure:"-"`
}

// LoadConfig reads the YAML configuration at path. A missing file yields an
// error wrapping ErrConfigMissing; anything else that goes wrong while
// reading or decoding is returned as-is.
//
// Connection settings go through viper so defaults and duration strings
// work the usual way. The queues mapping is decoded separately with yaml,
// because viper lowercases nested map keys and queue names are
// case-sensitive on the broker.
func LoadConfig(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrConfigMissing, path)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.SetDefault("host", DefaultHost)
	v.SetDefault("port", DefaultPort)
	v.SetDefault("username", DefaultUsername)
	v.SetDefault("password", DefaultPassword)
	v.SetDefault("vhost", DefaultVhost)
	v.SetDefault("timeout", DefaultTimeout.String())

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var queues struct {
		Queues map[string]QueueThreshold `yaml:"queues"`
	}
	if err := yaml.Unmarshal(raw, &queues); err != nil {
		return nil, fmt.Errorf("failed to decode queues in %s: %w", path, err)
	}
	cfg.Queues = queues.Queues

	for name, t := range cfg.Queues {
		if t.Warning > t.Critical {
			log.Warn().
				Str("queue", name).
				Int("warning", t.Warning).
				Int("critical", t.Critical).
				Msg("Warning threshold is above critical, the warning state is unreachable for this queue")
		}
	}

	log.Debug().
		Str("config", path).
		Str("host", cfg.Host).
		Int("port", cfg.Port).
		Str("vhost", cfg.Vhost).
		Int("queues", len(cfg.Queues)).
		Msg("Configuration loaded")

	return &cfg, nil
}
