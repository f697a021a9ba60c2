package broker

import (
	"context"
	"sync"

	"github.com/Egor213/RosoutDiag/internal/metrics"
	log "github.com/sirupsen/logrus"
)

const (
	DefaultQueueSize = 10

	DropReasonQueueFull  = "queue_full"
	DropReasonSendFailed = "send_failed"
)

// Queue is a bounded outbound buffer in front of a Producer. When full,
// the oldest pending payload is discarded to make room for the newest.
type Queue struct {
	producer Producer
	dropped  metrics.Counter
	pending  chan []byte

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewQueue(producer Producer, size int, dropped metrics.Counter) *Queue {
	if size <= 0 {
		size = DefaultQueueSize
	}
	return &Queue{
		producer: producer,
		dropped:  dropped,
		pending:  make(chan []byte, size),
	}
}

func (q *Queue) Publish(value []byte) {
	for {
		select {
		case q.pending <- value:
			return
		default:
		}

		select {
		case old := <-q.pending:
			q.dropped.Inc(DropReasonQueueFull)
			log.WithField("size", len(old)).Warn("Outbound queue full, dropping oldest report")
		default:
		}
	}
}

func (q *Queue) Len() int {
	return len(q.pending)
}

func (q *Queue) Start(ctx context.Context) {
	ctx, q.cancel = context.WithCancel(ctx)
	q.wg.Add(1)
	go func() {
		defer q.wg.Done()
		q.run(ctx)
	}()
}

func (q *Queue) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case value := <-q.pending:
			if err := q.producer.SendMessage(ctx, value); err != nil {
				q.dropped.Inc(DropReasonSendFailed)
				log.WithError(err).Error("Failed to publish diagnostic report")
			}
		}
	}
}

// Stop halts draining; reports still pending are discarded.
func (q *Queue) Stop() {
	if q.cancel != nil {
		q.cancel()
	}
	q.wg.Wait()
}
