package xolog

import (
	"github.com/stretchr/testify/mock"
)

// MockSink is a testify mock of the console sink, for asserting on
// console-fallback output in tests.
type MockSink struct {
	mock.Mock
}

func NewMockSink() *MockSink {
	return &MockSink{}
}

func (m *MockSink) Write(p []byte) (int, error) {
	args := m.Called(p)
	return args.Int(0), args.Error(1)
}
