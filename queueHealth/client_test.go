package queueHealth

import (
	"testing"
	"time"

	"github.com/monobilisim/check-rabbitmq-queues/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient_Defaults(t *testing.T) {
	t.Setenv(EnvUsername, "")
	t.Setenv(EnvPassword, "")

	client, err := NewClient(&common.Config{})
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:15672", client.Endpoint)
	assert.Equal(t, "guest", client.Username)
	assert.Equal(t, "guest", client.Password)
}

func TestNewClient_FromConfig(t *testing.T) {
	t.Setenv(EnvUsername, "")
	t.Setenv(EnvPassword, "")

	client, err := NewClient(&common.Config{
		Host:     "rabbit.example.com",
		Port:     15673,
		Username: "monitor",
		Password: "secret",
		Timeout:  10 * time.Second,
	})
	require.NoError(t, err)

	assert.Equal(t, "http://rabbit.example.com:15673", client.Endpoint)
	assert.Equal(t, "monitor", client.Username)
	assert.Equal(t, "secret", client.Password)
}

// Environment variables beat config-file credentials.
func TestNewClient_EnvPrecedence(t *testing.T) {
	t.Setenv(EnvUsername, "envuser")
	t.Setenv(EnvPassword, "envpass")

	client, err := NewClient(&common.Config{
		Username: "configuser",
		Password: "configpass",
	})
	require.NoError(t, err)

	assert.Equal(t, "envuser", client.Username)
	assert.Equal(t, "envpass", client.Password)
}

func TestResolveCredential(t *testing.T) {
	assert.Equal(t, "env", resolveCredential("env", "config", "guest"))
	assert.Equal(t, "config", resolveCredential("", "config", "guest"))
	assert.Equal(t, "guest", resolveCredential("", "", "guest"))
}
