package queue

import (
	"context"
	"sync"
)

// Memory is a channel-backed Broker for tests and local experiments.
type Memory struct {
	mu  sync.Mutex
	chs map[string]chan string
}

func NewMemory() *Memory {
	return &Memory{chs: make(map[string]chan string)}
}

func (m *Memory) channel(name string) chan string {
	m.mu.Lock()
	defer m.mu.Unlock()
	ch, ok := m.chs[name]
	if !ok {
		ch = make(chan string, 64)
		m.chs[name] = ch
	}
	return ch
}

func (m *Memory) Dequeue(ctx context.Context, channel string) (string, error) {
	select {
	case payload := <-m.channel(channel):
		return payload, nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func (m *Memory) Publish(ctx context.Context, channel string, payload string) error {
	select {
	case m.channel(channel) <- payload:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
