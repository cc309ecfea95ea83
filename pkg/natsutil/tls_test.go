package natsutil

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carverauto/journalgate/pkg/models"
)

func TestOptionsNilSecurity(t *testing.T) {
	opts, err := Options(nil)
	require.NoError(t, err)
	assert.Nil(t, opts)
}

func TestTLSConfigRequiresMTLSMode(t *testing.T) {
	_, err := TLSConfig(nil)
	require.ErrorIs(t, err, ErrMTLSRequired)

	_, err = TLSConfig(&models.SecurityConfig{Mode: "none"})
	require.ErrorIs(t, err, ErrMTLSRequired)
}

func TestTLSConfigMissingCertificates(t *testing.T) {
	dir := t.TempDir()

	sec := &models.SecurityConfig{
		Mode:    "mtls",
		CertDir: dir,
		TLS: models.TLSConfig{
			CertFile: "client.pem",
			KeyFile:  "client-key.pem",
			CAFile:   "root.pem",
		},
	}

	_, err := TLSConfig(sec)
	require.Error(t, err)

	// Paths were still normalized against the cert dir.
	assert.Equal(t, filepath.Join(dir, "client.pem"), sec.TLS.CertFile)
}
