package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/segmentio/kafka-go"
)

const (
	EventPackageCreated  = "package_created"
	EventLiftPassUpdated = "lift_pass_updated"
	EventLessonsAdded    = "lessons_added"
	EventWorldReloaded   = "world_reloaded"
)

type PackageEvent struct {
	ID            string    `json:"id"`
	Type          string    `json:"type"`
	PackageID     string    `json:"package_id,omitempty"`
	CustomerID    int       `json:"customer_id,omitempty"`
	CustomerName  string    `json:"customer_name,omitempty"`
	Accommodation string    `json:"accommodation,omitempty"`
	LiftPassDays  int       `json:"lift_pass_days"`
	TotalCents    int64     `json:"total_cents"`
	OccurredAt    time.Time `json:"occurred_at"`
}

type Producer struct {
	brokers []string
	writer  *kafka.Writer
}

func NewProducer(brokers []string) *Producer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 50 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
		Async:        false,
	}

	return &Producer{
		brokers: brokers,
		writer:  writer,
	}
}

func (p *Producer) Publish(ctx context.Context, topic, key string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	message := kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: data,
		Time:  time.Now(),
	}

	if err := p.writer.WriteMessages(ctx, message); err != nil {
		return fmt.Errorf("failed to write message to Kafka: %w", err)
	}

	log.Printf("published to Kafka - Topic: %s, Key: %s", topic, key)
	return nil
}

func (p *Producer) Close() error {
	if p.writer != nil {
		return p.writer.Close()
	}
	return nil
}

// DecodeEvent parses a message written by Publish.
func DecodeEvent(msg kafka.Message) (PackageEvent, error) {
	var event PackageEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		return PackageEvent{}, fmt.Errorf("decode event: %w", err)
	}
	return event, nil
}
