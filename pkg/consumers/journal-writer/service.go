package journalwriter

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/carverauto/journalgate/pkg/journal"
	"github.com/carverauto/journalgate/pkg/lifecycle"
	"github.com/carverauto/journalgate/pkg/logger"
	"github.com/carverauto/journalgate/pkg/natsutil"
)

// Service implements lifecycle.Service for the journal writer.
type Service struct {
	cfg       *JournalWriterConfig
	nc        *nats.Conn
	js        jetstream.JetStream
	sink      *journal.Sink
	consumer  *Consumer
	processor *Processor
	wg        sync.WaitGroup
	logger    logger.Logger
}

// NewService initializes the service.
func NewService(cfg *JournalWriterConfig, log logger.Logger) (*Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Service{cfg: cfg, logger: log}, nil
}

// Start opens the journal socket, connects to NATS and begins processing
// messages. A journal socket failure here is structural and fails fast;
// per-record failures later never stop the stream.
func (s *Service) Start(ctx context.Context) error {
	if err := journal.Healthcheck(s.cfg.Journald.SocketPath); err != nil {
		s.logger.Warn().Err(err).Msg("Journal socket healthcheck failed")
	}

	sink, err := journal.NewSink(&s.cfg.Journald, s.logger)
	if err != nil {
		return err
	}

	s.sink = sink
	s.processor = NewProcessor(sink, s.logger)

	opts, err := natsutil.Options(s.cfg.Security)
	if err != nil {
		_ = sink.Close()
		return fmt.Errorf("failed to build NATS TLS config: %w", err)
	}

	nc, err := nats.Connect(s.cfg.NATSURL, opts...)
	if err != nil {
		_ = sink.Close()
		return err
	}

	s.nc = nc

	var js jetstream.JetStream

	if s.cfg.Domain != "" {
		js, err = jetstream.NewWithDomain(nc, s.cfg.Domain)
	} else {
		js, err = jetstream.New(nc)
	}

	if err != nil {
		s.closeOnStartFailure()
		return err
	}

	s.js = js

	if _, err = js.Stream(ctx, s.cfg.StreamName); errors.Is(err, jetstream.ErrStreamNotFound) {
		sc := jetstream.StreamConfig{Name: s.cfg.StreamName}

		if s.cfg.Subject != "" {
			sc.Subjects = []string{s.cfg.Subject}
		}

		if _, err = js.CreateOrUpdateStream(ctx, sc); err != nil {
			s.closeOnStartFailure()
			return fmt.Errorf("failed to create stream %s: %w", s.cfg.StreamName, err)
		}
	} else if err != nil {
		s.closeOnStartFailure()
		return fmt.Errorf("failed to get stream %s: %w", s.cfg.StreamName, err)
	}

	var subjects []string
	if s.cfg.Subject != "" {
		subjects = []string{s.cfg.Subject}
	}

	s.consumer, err = NewConsumer(ctx, js, s.cfg.StreamName, s.cfg.ConsumerName, subjects, s.cfg.Acknowledgements, s.logger)
	if err != nil {
		s.closeOnStartFailure()
		return err
	}

	s.wg.Add(1)

	go func() {
		defer s.wg.Done()
		s.consumer.ProcessMessages(ctx, s.processor)
	}()

	s.logger.Info().
		Str("stream_name", s.cfg.StreamName).
		Str("consumer_name", s.cfg.ConsumerName).
		Msg("Journal writer started")

	return nil
}

func (s *Service) closeOnStartFailure() {
	if s.nc != nil {
		s.nc.Close()
		s.nc = nil
	}

	if s.sink != nil {
		_ = s.sink.Close()
		s.sink = nil
	}
}

// Stop shuts down the service.
func (s *Service) Stop(_ context.Context) error {
	if s.nc != nil {
		s.nc.Close()
	}

	s.wg.Wait()

	if s.sink != nil {
		_ = s.sink.Close()
	}

	s.logger.Info().Msg("Journal writer stopped")

	return nil
}

var _ lifecycle.Service = (*Service)(nil)
