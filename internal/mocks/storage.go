package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockKeyValue is a mock implementation of storage.KeyValue
type MockKeyValue struct {
	mock.Mock
}

// Get mocks the Get method
func (m *MockKeyValue) Get(ctx context.Context, key string) (string, bool, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Bool(1), args.Error(2)
}

// Set mocks the Set method
func (m *MockKeyValue) Set(ctx context.Context, key, value string) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

// Remove mocks the Remove method
func (m *MockKeyValue) Remove(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

// Ping mocks the Ping method
func (m *MockKeyValue) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
