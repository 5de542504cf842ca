package core

import (
	"github.com/stretchr/testify/mock"

	"github.com/amirhossein-jamali/webinar-hub/internal/domain/port/core"
)

// MockLogger is a testify mock of core.Logger
type MockLogger struct {
	mock.Mock
}

func (m *MockLogger) SetLevel(level core.LogLevel) {
	m.Called(level)
}

func (m *MockLogger) GetLevel() core.LogLevel {
	args := m.Called()
	return args.Get(0).(core.LogLevel)
}

// With returns the mock itself unless a different logger is configured
func (m *MockLogger) With(fields map[string]any) core.Logger {
	args := m.Called(fields)
	if l, ok := args.Get(0).(core.Logger); ok && l != nil {
		return l
	}
	return m
}

func (m *MockLogger) Debug(message string, fields map[string]any) {
	m.Called(message, fields)
}

func (m *MockLogger) Info(message string, fields map[string]any) {
	m.Called(message, fields)
}

func (m *MockLogger) Warn(message string, fields map[string]any) {
	m.Called(message, fields)
}

func (m *MockLogger) Error(message string, fields map[string]any) {
	m.Called(message, fields)
}

func (m *MockLogger) Flush() error {
	args := m.Called()
	return args.Error(0)
}
