package journalwriter

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nats-io/nats.go/jetstream"

	"github.com/carverauto/journalgate/pkg/journal"
	"github.com/carverauto/journalgate/pkg/logger"
	"github.com/carverauto/journalgate/pkg/models"
)

const (
	defaultMaxPullMessages = 50
	defaultPullExpiry      = 30 * time.Second
	defaultAckWait         = 30 * time.Second
	defaultMaxDeliveries   = 3
	defaultMaxAckPending   = 1000
)

// Consumer wraps a JetStream pull consumer feeding the journal sink.
type Consumer struct {
	js           jetstream.JetStream
	streamName   string
	consumerName string
	consumer     jetstream.Consumer
	acks         models.AckConfig
	logger       logger.Logger
}

// NewConsumer creates or retrieves a durable pull consumer for the stream.
func NewConsumer(
	ctx context.Context,
	js jetstream.JetStream,
	streamName, consumerName string,
	subjects []string,
	acks models.AckConfig,
	log logger.Logger,
) (*Consumer, error) {
	consumer, err := js.Consumer(ctx, streamName, consumerName)
	if err != nil {
		cfg := jetstream.ConsumerConfig{
			Durable:       consumerName,
			AckPolicy:     jetstream.AckExplicitPolicy,
			AckWait:       defaultAckWait,
			MaxDeliver:    defaultMaxDeliveries,
			MaxAckPending: defaultMaxAckPending,
		}

		if len(subjects) == 1 {
			cfg.FilterSubject = subjects[0]
		} else if len(subjects) > 1 {
			cfg.FilterSubjects = subjects
		}

		consumer, err = js.CreateConsumer(ctx, streamName, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to create consumer: %w", err)
		}
	}

	log.Info().
		Str("stream_name", streamName).
		Str("consumer_name", consumerName).
		Strs("subjects", subjects).
		Msg("Pull consumer ready")

	return &Consumer{
		js:           js,
		streamName:   streamName,
		consumerName: consumerName,
		consumer:     consumer,
		acks:         acks,
		logger:       log,
	}, nil
}

// ProcessMessages continuously fetches messages and journals them in
// arrival order. One message is in flight at a time; the sink's single
// datagram buffer is never shared.
func (c *Consumer) ProcessMessages(ctx context.Context, processor *Processor) {
	for {
		select {
		case <-ctx.Done():
			c.logger.Info().
				Str("stream_name", c.streamName).
				Str("consumer_name", c.consumerName).
				Msg("Stopping message processing due to context cancellation")

			return
		default:
			msgs, err := c.consumer.Fetch(defaultMaxPullMessages, jetstream.FetchMaxWait(defaultPullExpiry))
			if err != nil {
				c.logger.Error().Err(err).Msg("Failed to fetch messages")
				time.Sleep(time.Second)

				continue
			}

			for msg := range msgs.Messages() {
				if ctx.Err() != nil {
					return
				}

				c.handleMessage(ctx, msg, processor)
			}

			if fetchErr := msgs.Error(); fetchErr != nil {
				c.logger.Error().Err(fetchErr).Msg("Fetch error")
			}
		}
	}
}

// handleMessage journals one message and settles it. Poison records
// (oversized, invariant violations) are dropped with an ack; transient
// send failures are nak'd for redelivery while under the delivery budget.
func (c *Consumer) handleMessage(ctx context.Context, msg jetstream.Msg, processor *Processor) {
	err := processor.Process(ctx, msg)
	if err == nil {
		_ = msg.Ack()
		return
	}

	if !c.acks.Enabled {
		// Fire-and-forget mode never holds the stream for a failed record.
		c.logger.Error().Err(err).Str("subject", msg.Subject()).Msg("Record dropped")
		_ = msg.Ack()

		return
	}

	var sendErr *journal.SendError

	if errors.As(err, &sendErr) && sendErr.Transient {
		metadata, _ := msg.Metadata()

		if metadata != nil && metadata.NumDelivered >= defaultMaxDeliveries {
			c.logger.Error().
				Err(err).
				Uint64("deliveries", metadata.NumDelivered).
				Str("subject", msg.Subject()).
				Msg("Delivery budget exhausted, dropping record")
			_ = msg.Ack()
		} else {
			_ = msg.Nak()
		}

		return
	}

	c.logger.Error().Err(err).Str("subject", msg.Subject()).Msg("Unjournalable record dropped")
	_ = msg.Ack()
}
