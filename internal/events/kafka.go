package events

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// KafkaPublisher forwards recommendation-served events to the portal's
// analytics topic. It is optional: when no brokers are configured the
// dispatcher simply has no Kafka subscriber.
type KafkaPublisher struct {
	writer *kafka.Writer
	logger *zap.Logger
}

// NewKafkaPublisher builds a publisher for the given brokers and topic.
func NewKafkaPublisher(brokers []string, topic string, logger *zap.Logger) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		},
		logger: logger,
	}
}

// Handler returns an EventHandler suitable for Dispatcher.Subscribe. Send
// failures are logged, never propagated: event delivery must not affect the
// recommendation response.
func (p *KafkaPublisher) Handler() EventHandler {
	return func(ctx context.Context, event Event) error {
		data, err := json.Marshal(event)
		if err != nil {
			p.logger.Error("marshal event", zap.Error(err))
			return err
		}
		msg := kafka.Message{
			Key:   []byte(event.WorkspaceID),
			Value: data,
		}
		if err := p.writer.WriteMessages(ctx, msg); err != nil {
			p.logger.Warn("kafka publish failed",
				zap.String("event_type", string(event.Type)),
				zap.Error(err))
			return err
		}
		return nil
	}
}

// Close releases the underlying writer.
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
