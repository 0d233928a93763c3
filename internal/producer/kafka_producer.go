package producer

import (
	"context"
	"encoding/json"
	"time"

	"github.com/XDazaiX/La-Habana-Kitchen/internal/models"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// OrderProducer publishes confirmed orders to Kafka, one JSON message per
// order keyed by order number.
type OrderProducer struct {
	writer *kafka.Writer
}

func NewOrderProducer(brokers []string, topic string) *OrderProducer {
	return &OrderProducer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.LeastBytes{},
			RequiredAcks: kafka.RequireAll,
		},
	}
}

func (p *OrderProducer) PublishOrderConfirmed(ctx context.Context, o models.Order) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	value, err := json.Marshal(o)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(o.Number),
		Value: value,
	})
}

func (p *OrderProducer) Close() error {
	return p.writer.Close()
}

// LogSink stands in for Kafka when no brokers are configured, so confirmed
// orders still show up somewhere.
type LogSink struct {
	Log *zap.Logger
}

func (s *LogSink) PublishOrderConfirmed(_ context.Context, o models.Order) error {
	s.Log.Info("confirmed order (kafka disabled)",
		zap.String("order_number", o.Number),
		zap.String("customer", o.Customer.Name),
		zap.Int64("total_cents", o.TotalCents))
	return nil
}
