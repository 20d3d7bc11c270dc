// Package kafka wraps the low-level producer used for direct reload
// notifications. The durable broadcast path goes through the outbox
// and the broadcaster job instead.
package kafka

import (
	"context"
	"encoding/binary"
	"time"

	"github.com/segmentio/kafka-go"
)

// Producer publishes reload notifications keyed by sequence so
// consumers can dedupe and order them per partition.
type Producer struct {
	writer *kafka.Writer
}

func NewProducer(brokers []string, topic string) *Producer {
	return &Producer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			RequiredAcks: kafka.RequireAll,
			Async:        false,
			BatchTimeout: 10 * time.Millisecond,
		},
	}
}

// Send publishes one notification. The key is the big-endian reload
// sequence.
func (p *Producer) Send(ctx context.Context, seq uint64, value []byte) error {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, seq)
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   key,
		Value: value,
	})
}

func (p *Producer) Close() error {
	return p.writer.Close()
}
