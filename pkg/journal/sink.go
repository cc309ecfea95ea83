package journal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"sync/atomic"
	"time"

	"golang.org/x/sys/unix"

	"github.com/carverauto/journalgate/pkg/logger"
	"github.com/carverauto/journalgate/pkg/models"
)

const (
	// DefaultSocketPath is where systemd-journald listens for native
	// protocol datagrams.
	DefaultSocketPath = "/run/systemd/journal/socket"

	// DefaultMaxDatagramSize bounds one encoded record. journald accepts
	// datagrams up to a few megabytes, subject to socket buffer limits.
	DefaultMaxDatagramSize = 2 << 20
)

// Sink owns one connected unixgram socket and a reusable encode buffer.
// It is not safe for concurrent use: each sink has exactly one writer and
// at most one in-flight datagram.
type Sink struct {
	conn    *net.UnixConn
	path    string
	maxSize int
	buf     Buffer
	logger  logger.Logger

	sent    atomic.Uint64
	dropped atomic.Uint64
	failed  atomic.Uint64
}

// SinkStats is a snapshot of the per-sink counters.
type SinkStats struct {
	Sent    uint64 `json:"sent"`
	Dropped uint64 `json:"dropped"`
	Failed  uint64 `json:"failed"`
}

// NewSink connects to the journal daemon socket. A failure here is
// structural: the sink must not start if the socket cannot be opened.
func NewSink(cfg *models.JournaldConfig, log logger.Logger) (*Sink, error) {
	path := DefaultSocketPath
	maxSize := DefaultMaxDatagramSize

	if cfg != nil {
		if cfg.SocketPath != "" {
			path = cfg.SocketPath
		}

		if cfg.MaxDatagramSize > 0 {
			maxSize = cfg.MaxDatagramSize
		}
	}

	conn, err := net.DialUnix("unixgram", nil, &net.UnixAddr{Name: path, Net: "unixgram"})
	if err != nil {
		return nil, fmt.Errorf("failed to open journal socket %s: %w", path, err)
	}

	log.Info().
		Str("socket_path", path).
		Int("max_datagram_size", maxSize).
		Msg("Journal sink bound")

	return &Sink{conn: conn, path: path, maxSize: maxSize, logger: log}, nil
}

// Send encodes rec into exactly one datagram and writes it to the journal
// socket. Fields are encoded in record order. Per-record failures (invalid
// value, oversized record, transient socket error) leave the sink usable
// for the next record; nothing is ever partially written to the wire.
//
// No timeout is imposed here; a deadline on ctx is honored for the write.
func (s *Sink) Send(ctx context.Context, rec models.Record) error {
	s.buf.Reset()

	for _, f := range rec {
		if err := s.buf.AppendField(f.Name, f.Value); err != nil {
			s.dropped.Add(1)
			s.buf.Reset()

			return fmt.Errorf("field %q: %w", f.Name, err)
		}
	}

	if s.buf.Len() > s.maxSize {
		s.dropped.Add(1)
		s.logger.Warn().
			Int("encoded_size", s.buf.Len()).
			Int("max_datagram_size", s.maxSize).
			Msg("Dropping oversized record")

		return fmt.Errorf("%w: %d bytes", ErrRecordTooLarge, s.buf.Len())
	}

	if deadline, ok := ctx.Deadline(); ok {
		_ = s.conn.SetWriteDeadline(deadline)
		defer func() { _ = s.conn.SetWriteDeadline(time.Time{}) }()
	}

	if _, err := s.conn.Write(s.buf.Bytes()); err != nil {
		s.failed.Add(1)

		return &SendError{Transient: isTransientSendError(err), Err: err}
	}

	s.sent.Add(1)

	return nil
}

// Stats returns a snapshot of the sink counters.
func (s *Sink) Stats() SinkStats {
	return SinkStats{
		Sent:    s.sent.Load(),
		Dropped: s.dropped.Load(),
		Failed:  s.failed.Load(),
	}
}

// Close releases the socket.
func (s *Sink) Close() error {
	stats := s.Stats()
	s.logger.Info().
		Uint64("sent", stats.Sent).
		Uint64("dropped", stats.Dropped).
		Uint64("failed", stats.Failed).
		Msg("Journal sink closed")

	return s.conn.Close()
}

// Healthcheck is a cheap reachability probe of the daemon socket path,
// independent of the send path.
func Healthcheck(path string) error {
	if path == "" {
		path = DefaultSocketPath
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("journal socket unavailable: %w", err)
	}

	if info.Mode()&os.ModeSocket == 0 {
		return fmt.Errorf("%w: %s", ErrNotASocket, path)
	}

	return nil
}

// isTransientSendError reports whether a socket write failure is expected
// to clear, e.g. the daemon restarting or its socket buffers being full.
func isTransientSendError(err error) bool {
	switch {
	case errors.Is(err, unix.ENOBUFS),
		errors.Is(err, unix.EAGAIN),
		errors.Is(err, unix.ENOENT),
		errors.Is(err, unix.ECONNREFUSED),
		errors.Is(err, unix.ECONNRESET):
		return true
	case errors.Is(err, os.ErrDeadlineExceeded):
		return true
	default:
		return false
	}
}
