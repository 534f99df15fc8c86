package mocks

import (
	"context"

	"docfs/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockFileSystem struct {
	mock.Mock
}

func (m *MockFileSystem) Write(ctx context.Context, directory string, document model.Document) model.WriteFileResult {
	args := m.Called(ctx, directory, document)
	return args.Get(0).(model.WriteFileResult)
}

func (m *MockFileSystem) List(ctx context.Context, path string) []string {
	args := m.Called(ctx, path)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]string)
}

func (m *MockFileSystem) Exists(ctx context.Context, path string) bool {
	args := m.Called(ctx, path)
	return args.Bool(0)
}

func (m *MockFileSystem) Delete(ctx context.Context, path string) {
	m.Called(ctx, path)
}

func (m *MockFileSystem) GetDocument(ctx context.Context, path string) model.Document {
	args := m.Called(ctx, path)
	return args.Get(0).(model.Document)
}
