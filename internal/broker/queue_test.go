package broker_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/Egor213/RosoutDiag/internal/broker"
	brokermocks "github.com/Egor213/RosoutDiag/internal/mocks/broker"
	countermocks "github.com/Egor213/RosoutDiag/internal/mocks/counters"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func payload(i int) []byte {
	return []byte(fmt.Sprintf("report-%d", i))
}

func TestQueue_Publish_DropsOldest(t *testing.T) {
	ctrl := gomock.NewController(t)

	producer := brokermocks.NewMockProducer(ctrl)
	dropped := countermocks.NewMockCounter(ctrl)
	dropped.EXPECT().Inc(broker.DropReasonQueueFull).Times(2)

	q := broker.NewQueue(producer, 10, dropped)
	for i := 1; i <= 12; i++ {
		q.Publish(payload(i))
	}
	assert.Equal(t, 10, q.Len())

	var (
		mu   sync.Mutex
		sent []string
		done = make(chan struct{})
	)
	producer.EXPECT().
		SendMessage(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, value []byte) error {
			mu.Lock()
			defer mu.Unlock()
			sent = append(sent, string(value))
			if len(sent) == 10 {
				close(done)
			}
			return nil
		}).
		Times(10)

	q.Start(context.Background())
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("queue was not drained")
	}
	q.Stop()

	want := make([]string, 0, 10)
	for i := 3; i <= 12; i++ {
		want = append(want, string(payload(i)))
	}
	assert.Equal(t, want, sent)
}

func TestQueue_SendFailureIsCounted(t *testing.T) {
	ctrl := gomock.NewController(t)

	producer := brokermocks.NewMockProducer(ctrl)
	dropped := countermocks.NewMockCounter(ctrl)

	done := make(chan struct{})
	producer.EXPECT().
		SendMessage(gomock.Any(), payload(1)).
		Return(errors.New("broker down"))
	dropped.EXPECT().
		Inc(broker.DropReasonSendFailed).
		Do(func(...string) { close(done) })

	q := broker.NewQueue(producer, 1, dropped)
	q.Start(context.Background())
	q.Publish(payload(1))

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("send failure was not reported")
	}
	q.Stop()
}

func TestQueue_DefaultSize(t *testing.T) {
	ctrl := gomock.NewController(t)

	q := broker.NewQueue(brokermocks.NewMockProducer(ctrl), 0, countermocks.NewMockCounter(ctrl))
	for i := 0; i < broker.DefaultQueueSize; i++ {
		q.Publish(payload(i))
	}
	require.Equal(t, broker.DefaultQueueSize, q.Len())
}

func TestQueue_StopWithoutStart(t *testing.T) {
	ctrl := gomock.NewController(t)

	q := broker.NewQueue(brokermocks.NewMockProducer(ctrl), 1, countermocks.NewMockCounter(ctrl))
	assert.NotPanics(t, q.Stop)
}
