package journalwriter

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/carverauto/journalgate/pkg/flatten"
	"github.com/carverauto/journalgate/pkg/journal"
	"github.com/carverauto/journalgate/pkg/logger"
	"github.com/carverauto/journalgate/pkg/models"
)

// Journal fields contributed by the event envelope. Payload fields keep
// their own (sanitized) names.
const (
	fieldMessage      = "MESSAGE"
	fieldPriority     = "PRIORITY"
	fieldEventID      = "EVENT_ID"
	fieldEventSource  = "EVENT_SOURCE"
	fieldEventType    = "EVENT_TYPE"
	fieldEventSubject = "EVENT_SUBJECT"
	fieldEventTime    = "EVENT_TIME"
)

// defaultPriority is syslog informational.
const defaultPriority = 6

// Processor turns stream messages into journal records and writes them
// through the sink.
type Processor struct {
	sink   *journal.Sink
	logger logger.Logger
}

// NewProcessor creates a Processor writing to the given sink.
func NewProcessor(sink *journal.Sink, log logger.Logger) *Processor {
	return &Processor{sink: sink, logger: log}
}

// Process encodes one message and delivers it as a single datagram. The
// returned error carries the sink's classification; the consumer decides
// how to settle the message.
func (p *Processor) Process(ctx context.Context, msg jetstream.Msg) error {
	return p.sink.Send(ctx, buildRecord(msg.Data(), msg.Subject()))
}

// Stats exposes the underlying sink counters.
func (p *Processor) Stats() journal.SinkStats {
	return p.sink.Stats()
}

// buildRecord converts one event payload into an ordered journal record:
// envelope fields first, then the flattened payload in sorted key order.
// Payloads that are not CloudEvents are journaled verbatim as the message.
func buildRecord(data []byte, subject string) models.Record {
	var ce models.CloudEvent

	if err := json.Unmarshal(data, &ce); err != nil || len(ce.Data) == 0 {
		rec := models.Record{}
		rec = rec.Add(fieldMessage, models.TextValue(string(data)))
		rec = rec.Add(fieldPriority, models.IntValue(defaultPriority))
		rec = rec.Add(fieldEventSubject, models.TextValue(subject))

		return rec
	}

	if ce.Subject == "" {
		ce.Subject = subject
	}

	if ce.ID == "" {
		ce.ID = uuid.New().String()
	}

	var payload map[string]interface{}
	if err := json.Unmarshal(ce.Data, &payload); err != nil || payload == nil {
		payload = map[string]interface{}{"data": string(ce.Data)}
	}

	message := ce.Type

	if m, ok := payload["short_message"].(string); ok && m != "" {
		message = m

		delete(payload, "short_message")
	} else if m, ok := payload["message"].(string); ok && m != "" {
		message = m

		delete(payload, "message")
	}

	priority := int64(defaultPriority)

	// GELF levels are syslog priorities already; clamp out-of-range input.
	if lvl, ok := payload["level"].(float64); ok {
		priority = clampPriority(int64(lvl))

		delete(payload, "level")
	}

	rec := models.Record{}
	rec = rec.Add(fieldMessage, models.TextValue(message))
	rec = rec.Add(fieldPriority, models.IntValue(priority))
	rec = rec.Add(fieldEventID, models.TextValue(ce.ID))

	if ce.Source != "" {
		rec = rec.Add(fieldEventSource, models.TextValue(ce.Source))
	}

	if ce.Type != "" {
		rec = rec.Add(fieldEventType, models.TextValue(ce.Type))
	}

	if ce.Subject != "" {
		rec = rec.Add(fieldEventSubject, models.TextValue(ce.Subject))
	}

	if ce.Time != nil {
		rec = rec.Add(fieldEventTime, models.TimeValue(*ce.Time))
	}

	return append(rec, flatten.Object(payload)...)
}

func clampPriority(p int64) int64 {
	if p < 0 {
		return 0
	}

	if p > 7 {
		return 7
	}

	return p
}
