// Package events publishes committed changes to Kafka.
package events

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-notes/internal/logger"
	"github.com/sbilibin2017/gw-notes/internal/models"
	"github.com/segmentio/kafka-go"
)

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// NewKafkaWriter returns a writer for topic that keeps the events of one
// entity on the same partition.
func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	}
}

// Publisher serializes events as JSON and writes them to Kafka. A Publisher
// without a writer drops events with a warning.
type Publisher struct {
	writer KafkaWriter
}

// NewPublisher creates a Publisher. writer may be nil.
func NewPublisher(writer KafkaWriter) *Publisher {
	return &Publisher{writer: writer}
}

// New stamps an event of eventType about entityID made by userID.
func New(eventType string, userID, entityID int64) models.Event {
	return models.Event{
		EventID:   uuid.NewString(),
		Type:      eventType,
		UserID:    userID,
		EntityID:  entityID,
		Timestamp: time.Now().Unix(),
	}
}

// Publish writes evs in one batch. Failures are logged and never returned.
func (p *Publisher) Publish(ctx context.Context, evs ...models.Event) {
	if len(evs) == 0 {
		return
	}
	if p == nil || p.writer == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "events", len(evs), "type", evs[0].Type)
		return
	}

	msgs := make([]kafka.Message, 0, len(evs))
	for _, ev := range evs {
		data, err := json.Marshal(ev)
		if err != nil {
			logger.Log.Errorw("Failed to marshal event for Kafka", "event_id", ev.EventID, "error", err)
			continue
		}
		msgs = append(msgs, kafka.Message{
			Key:   []byte(strconv.FormatInt(ev.EntityID, 10)),
			Value: data,
		})
	}

	if err := p.writer.WriteMessages(ctx, msgs...); err != nil {
		logger.Log.Errorw("Failed to publish events to Kafka", "events", len(msgs), "type", evs[0].Type, "error", err)
		return
	}
	logger.Log.Infow("Events published to Kafka", "events", len(msgs), "type", evs[0].Type)
}

// Close closes the underlying writer.
func (p *Publisher) Close() error {
	if p == nil || p.writer == nil {
		return nil
	}
	return p.writer.Close()
}
