package mocks

import (
	"context"

	"docfs/internal/storage"

	"github.com/stretchr/testify/mock"
)

type MockBackend struct {
	mock.Mock
}

func (m *MockBackend) Stat(ctx context.Context, path string) (storage.EntryInfo, error) {
	args := m.Called(ctx, path)
	return args.Get(0).(storage.EntryInfo), args.Error(1)
}

func (m *MockBackend) ReadDir(ctx context.Context, path string) ([]string, error) {
	args := m.Called(ctx, path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockBackend) ReadFile(ctx context.Context, path string) ([]byte, error) {
	args := m.Called(ctx, path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockBackend) WriteFile(ctx context.Context, path string, data []byte) error {
	args := m.Called(ctx, path, data)
	return args.Error(0)
}

func (m *MockBackend) RemoveAll(ctx context.Context, path string) error {
	args := m.Called(ctx, path)
	return args.Error(0)
}
