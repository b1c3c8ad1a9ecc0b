package queueHealth

import (
	"fmt"
	"os"

	rabbithole "github.com/michaelklishin/rabbit-hole/v2"
	"github.com/monobilisim/check-rabbitmq-queues/common"
	"github.com/rs/zerolog/log"
)

// Environment variables that override the config-file credentials. They
// take precedence so secrets can stay out of the config file.
const (
	EnvUsername = "CHECK_RABBITMQ_QUEUES_USERNAME"
	EnvPassword = "CHECK_RABBITMQ_QUEUES_PASSWORD"
)

// QueueFetcher is the one slice of the management API the checker needs.
// *rabbithole.Client satisfies it.
type QueueFetcher interface {
	GetQueue(vhost, queue string) (*rabbithole.DetailedQueueInfo, error)
}

// NewClient builds a management API client from the configuration.
// Credentials resolve as environment variable > config value > guest.
// No network I/O happens here.
func NewClient(cfg *common.Config) (*rabbithole.Client, error) {
	host := cfg.Host
	if host == "" {
		host = common.DefaultHost
	}
	port := cfg.Port
	if port == 0 {
		port = common.DefaultPort
	}

	username := resolveCredential(os.Getenv(EnvUsername), cfg.Username, common.DefaultUsername)
	password := resolveCredential(os.Getenv(EnvPassword), cfg.Password, common.DefaultPassword)

	uri := fmt.Sprintf("http://%s:%d", host, port)

	client, err := rabbithole.NewClient(uri, username, password)
	if err != nil {
		return nil, fmt.Errorf("failed to create management API client for %s: %w", uri, err)
	}

	if cfg.Timeout > 0 {
		client.SetTimeout(cfg.Timeout)
	}

	log.Debug().
		Str("endpoint", uri).
		Str("username", username).
		Dur("timeout", cfg.Timeout).
		Msg("Management API client created")

	return client, nil
}

func resolveCredential(fromEnv, fromConfig, fallback string) string {
	if fromEnv != "" {
		return fromEnv
	}
	if fromConfig != "" {
		return fromConfig
	}
	return fallback
}
