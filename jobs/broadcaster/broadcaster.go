package broadcaster

import (
	"context"
	"log"
	"time"

	"heimdall/infra/outbox"

	"github.com/IBM/sarama"
)

// Broadcaster drains the publish outbox into Kafka.
type Broadcaster struct {
	outbox   *outbox.Outbox
	producer sarama.SyncProducer
	topic    string
	interval time.Duration
}

// New builds a broadcaster with a synchronous, all-acks producer.
// Retries on the producer are bounded; the outbox state machine makes
// redelivery safe.
func New(
	ob *outbox.Outbox,
	brokers []string,
	topic string,
	interval time.Duration,
) (*Broadcaster, error) {

	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 5

	producer, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, err
	}

	if interval == 0 {
		interval = 250 * time.Millisecond
	}

	return &Broadcaster{
		outbox:   ob,
		producer: producer,
		topic:    topic,
		interval: interval,
	}, nil
}

// Start runs the drain loop until ctx is cancelled.
func (b *Broadcaster) Start(ctx context.Context) {
	log.Println("[broadcaster] started")

	go func() {
		ticker := time.NewTicker(b.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				b.drainOnce()
			}
		}
	}()
}

// drainOnce walks NEW records in sequence order. Mark SENT before the
// publish so a crash between publish and ack results in redelivery,
// never a silent drop.
func (b *Broadcaster) drainOnce() {
	_ = b.outbox.ScanByState(outbox.StateNew, func(seq uint64, rec outbox.Record) error {
		if err := b.outbox.UpdateState(seq, outbox.StateSent, rec.Retries); err != nil {
			return nil
		}

		msg := &sarama.ProducerMessage{
			Topic: b.topic,
			Value: sarama.ByteEncoder(rec.Payload),
		}
		if _, _, err := b.producer.SendMessage(msg); err != nil {
			log.Printf("[broadcaster] publish seq=%d failed: %v", seq, err)
			_ = b.outbox.UpdateState(seq, outbox.StateNew, rec.Retries+1)
			return nil // retry on the next tick
		}

		_ = b.outbox.UpdateState(seq, outbox.StateAcked, rec.Retries)
		return nil
	})
}

func (b *Broadcaster) Close() error {
	return b.producer.Close()
}
