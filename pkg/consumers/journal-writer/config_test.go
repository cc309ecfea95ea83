package journalwriter

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	cfg := &JournalWriterConfig{
		NATSURL:      "nats://127.0.0.1:4222",
		StreamName:   "events",
		ConsumerName: "journal-writer",
	}

	require.NoError(t, cfg.Validate())
}

func TestConfigValidateMissingFields(t *testing.T) {
	cfg := &JournalWriterConfig{}

	err := cfg.Validate()
	require.Error(t, err)

	assert.ErrorIs(t, err, ErrMissingNATSURL)
	assert.ErrorIs(t, err, ErrMissingStreamName)
	assert.ErrorIs(t, err, ErrMissingConsumerName)
}

func TestConfigUnmarshalNormalizesTLSPaths(t *testing.T) {
	raw := `{
		"nats_url": "tls://nats.internal:4222",
		"stream_name": "events",
		"consumer_name": "journal-writer",
		"subject": "events.>",
		"security": {
			"mode": "mtls",
			"cert_dir": "/etc/journalgate/certs",
			"tls": {
				"cert_file": "client.pem",
				"key_file": "client-key.pem",
				"ca_file": "root.pem"
			}
		},
		"journald": {
			"socket_path": "/run/systemd/journal/socket",
			"max_datagram_size": 1048576
		},
		"acknowledgements": {"enabled": true}
	}`

	var cfg JournalWriterConfig

	require.NoError(t, json.Unmarshal([]byte(raw), &cfg))
	require.NoError(t, cfg.Validate())

	require.NotNil(t, cfg.Security)
	assert.Equal(t, "/etc/journalgate/certs/client.pem", cfg.Security.TLS.CertFile)
	assert.Equal(t, "/etc/journalgate/certs/client-key.pem", cfg.Security.TLS.KeyFile)
	assert.Equal(t, "/etc/journalgate/certs/root.pem", cfg.Security.TLS.CAFile)

	assert.Equal(t, 1048576, cfg.Journald.MaxDatagramSize)
	assert.True(t, cfg.Acknowledgements.Enabled)
}

func TestConfigUnmarshalBadJSON(t *testing.T) {
	var cfg JournalWriterConfig

	err := json.Unmarshal([]byte(`{"nats_url": 42}`), &cfg)
	require.ErrorIs(t, err, ErrInvalidJSON)
}
