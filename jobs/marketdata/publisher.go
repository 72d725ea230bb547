// Package marketdata publishes periodic depth snapshots to Kafka.
// Depth is a read-only view taken under the engine lock; consumers
// get an eventually-consistent feed, never a torn one.
package marketdata

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"odin/domain/orderbook"
	"odin/infra/kafka"
)

// DepthSource is the query surface the publisher reads from.
type DepthSource interface {
	Depth(levels int) orderbook.Depth
}

type depthLevel struct {
	Price  string `json:"price"`
	Qty    int64  `json:"qty"`
	Orders int    `json:"orders"`
}

type depthEvent struct {
	V    int          `json:"v"`
	Type string       `json:"type"`
	Time int64        `json:"time"`
	Bids []depthLevel `json:"bids"`
	Asks []depthLevel `json:"asks"`
}

type Publisher struct {
	src      DepthSource
	producer *kafka.Producer
	levels   int
	interval time.Duration
	log      *zap.Logger
}

func New(
	src DepthSource,
	brokers []string,
	topic string,
	levels int,
	interval time.Duration,
	log *zap.Logger,
) *Publisher {
	if log == nil {
		log = zap.NewNop()
	}
	return &Publisher{
		src:      src,
		producer: kafka.NewProducer(brokers, topic),
		levels:   levels,
		interval: interval,
		log:      log,
	}
}

// Run publishes until ctx is done.
func (p *Publisher) Run(ctx context.Context) {
	p.log.Info("depth publisher started", zap.Int("levels", p.levels))

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.publishOnce(ctx)
		}
	}
}

func (p *Publisher) publishOnce(ctx context.Context) {
	depth := p.src.Depth(p.levels)

	ev := depthEvent{
		V:    1,
		Type: "depth",
		Time: time.Now().UnixNano(),
		Bids: toLevels(depth.Bids),
		Asks: toLevels(depth.Asks),
	}

	payload, err := json.Marshal(ev)
	if err != nil {
		p.log.Warn("depth marshal failed", zap.Error(err))
		return
	}

	if err := p.producer.Send(ctx, nil, payload); err != nil {
		p.log.Warn("depth publish failed", zap.Error(err))
	}
}

func toLevels(in []orderbook.DepthLevel) []depthLevel {
	out := make([]depthLevel, len(in))
	for i, lvl := range in {
		out[i] = depthLevel{
			Price:  lvl.Price.String(),
			Qty:    lvl.Qty,
			Orders: lvl.Orders,
		}
	}
	return out
}

func (p *Publisher) Close() error {
	return p.producer.Close()
}
