package producer

import (
	"context"

	kafkago "github.com/segmentio/kafka-go"
)

// MessageWriter is the part of *kafkago.Writer the publisher needs.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// Envelope is one record published to Kafka. Topic must stay empty when
// the writer is already bound to a topic.
type Envelope struct {
	Topic     string
	Key       string
	EventType string
	Source    string
	Payload   []byte
}

type Publisher struct {
	writer MessageWriter
}

func NewPublisher(writer MessageWriter) *Publisher {
	return &Publisher{writer: writer}
}

func (p *Publisher) Publish(ctx context.Context, env Envelope) error {
	msg := kafkago.Message{
		Topic: env.Topic,
		Key:   []byte(env.Key),
		Value: env.Payload,
		Headers: []kafkago.Header{
			{Key: "event_type", Value: []byte(env.EventType)},
			{Key: "source", Value: []byte(env.Source)},
		},
	}

	return p.writer.WriteMessages(ctx, msg)
}
