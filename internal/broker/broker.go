package broker

import "context"

//go:generate mockgen -source=broker.go -destination=../mocks/broker/mock.go -package=brokermocks

type Producer interface {
	SendMessage(ctx context.Context, value []byte) error
	Close() error
}

// Publisher accepts a payload without blocking on delivery.
type Publisher interface {
	Publish(value []byte)
}

type Handler func(ctx context.Context, value []byte) error

// Consumer delivers messages to the handler one at a time until ctx is done.
type Consumer interface {
	Consume(ctx context.Context, handler Handler) error
	Close() error
}
