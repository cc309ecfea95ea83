package journalwriter

import (
	"encoding/json"
	"errors"

	"github.com/carverauto/journalgate/pkg/config"
	"github.com/carverauto/journalgate/pkg/logger"
	"github.com/carverauto/journalgate/pkg/models"
)

var (
	ErrMissingNATSURL      = errors.New("nats_url is required")
	ErrMissingStreamName   = errors.New("stream_name is required")
	ErrMissingConsumerName = errors.New("consumer_name is required")
	ErrInvalidJSON         = errors.New("failed to unmarshal JSON configuration")
)

// JournalWriterConfig holds configuration for the journal writer consumer.
type JournalWriterConfig struct {
	NATSURL          string                 `json:"nats_url"`
	Domain           string                 `json:"domain,omitempty"`
	Subject          string                 `json:"subject"`
	StreamName       string                 `json:"stream_name"`
	ConsumerName     string                 `json:"consumer_name"`
	Security         *models.SecurityConfig `json:"security,omitempty"`
	Journald         models.JournaldConfig  `json:"journald"`
	Acknowledgements models.AckConfig       `json:"acknowledgements"`
	Logging          *logger.Config         `json:"logging,omitempty"`
}

// UnmarshalJSON ensures TLS paths are normalized.
func (c *JournalWriterConfig) UnmarshalJSON(data []byte) error {
	type Alias JournalWriterConfig

	var alias struct{ Alias }

	alias.Alias = Alias{}

	if err := json.Unmarshal(data, &alias); err != nil {
		return errors.Join(ErrInvalidJSON, err)
	}

	*c = JournalWriterConfig(alias.Alias)

	if c.Security != nil && c.Security.CertDir != "" {
		config.NormalizeTLSPaths(&c.Security.TLS, c.Security.CertDir)
	}

	return nil
}

// Validate checks the configuration for required fields.
func (c *JournalWriterConfig) Validate() error {
	var errs []error

	if c.NATSURL == "" {
		errs = append(errs, ErrMissingNATSURL)
	}

	if c.StreamName == "" {
		errs = append(errs, ErrMissingStreamName)
	}

	if c.ConsumerName == "" {
		errs = append(errs, ErrMissingConsumerName)
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}
