package mocks

import "context"

// MockPinger implements store.Pinger, returning Err from every Ping.
type MockPinger struct {
	Err   error
	Calls int
}

func (m *MockPinger) Ping(ctx context.Context) error {
	m.Calls++
	return m.Err
}
