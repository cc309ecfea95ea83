package journalwriter

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/carverauto/journalgate/pkg/journal"
	"github.com/carverauto/journalgate/pkg/logger"
	"github.com/carverauto/journalgate/pkg/models"
)

func newTestSink(t *testing.T, path string) *journal.Sink {
	t.Helper()

	sink, err := journal.NewSink(&models.JournaldConfig{SocketPath: path}, logger.NewTestLogger())
	require.NoError(t, err)

	t.Cleanup(func() { _ = sink.Close() })

	return sink
}

func newSizedSink(path string, maxSize int) (*journal.Sink, error) {
	cfg := &models.JournaldConfig{SocketPath: path, MaxDatagramSize: maxSize}
	return journal.NewSink(cfg, logger.NewTestLogger())
}
