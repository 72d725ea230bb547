// Package broadcaster drains the trade outbox to Kafka. Delivery is
// at-least-once: a record is marked SENT before publish and ACKED
// after the broker confirms, so a crash between the two replays the
// event on the next pass.
package broadcaster

import (
	"context"
	"strconv"
	"time"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	exitwal "odin/infra/wal/exit"
)

type Broadcaster struct {
	outbox   *exitwal.ExitWAL
	producer sarama.SyncProducer
	topic    string
	interval time.Duration
	log      *zap.Logger
}

func New(
	outbox *exitwal.ExitWAL,
	brokers []string,
	topic string,
	interval time.Duration,
	log *zap.Logger,
) (*Broadcaster, error) {
	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 5

	producer, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, err
	}

	if log == nil {
		log = zap.NewNop()
	}
	if interval <= 0 {
		interval = 250 * time.Millisecond
	}

	return &Broadcaster{
		outbox:   outbox,
		producer: producer,
		topic:    topic,
		interval: interval,
		log:      log,
	}, nil
}

// Start drains the outbox on a fixed cadence until ctx is done.
func (b *Broadcaster) Start(ctx context.Context) {
	b.log.Info("broadcaster started", zap.String("topic", b.topic))

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

func (b *Broadcaster) drainOnce() {
	err := b.outbox.ScanPending(func(rec *exitwal.Record) error {
		// Mark SENT first; idempotent on retry.
		if err := b.outbox.MarkSent(rec.Seq); err != nil {
			return err
		}

		msg := &sarama.ProducerMessage{
			Topic: b.topic,
			Key:   sarama.StringEncoder(strconv.FormatUint(rec.Seq, 10)),
			Value: sarama.ByteEncoder(rec.Payload),
		}
		if _, _, err := b.producer.SendMessage(msg); err != nil {
			// Leave the record SENT; the next pass retries it.
			b.log.Warn("trade publish failed",
				zap.Uint64("seq", rec.Seq), zap.Error(err))
			return nil
		}

		return b.outbox.MarkAcked(rec.Seq)
	})
	if err != nil {
		b.log.Warn("outbox drain failed", zap.Error(err))
	}
}

func (b *Broadcaster) Close() error {
	return b.producer.Close()
}
