package app

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/mock"

	"guidelight/internal/assistant/domain"
	"guidelight/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.SetNewNop()
	os.Exit(m.Run())
}

// MockWebSearcher mocks repository.WebSearcher.
type MockWebSearcher struct {
	mock.Mock
}

func (m *MockWebSearcher) Search(ctx context.Context, query string) ([]domain.SearchResult, error) {
	args := m.Called(ctx, query)
	if results, ok := args.Get(0).([]domain.SearchResult); ok {
		return results, args.Error(1)
	}
	return nil, args.Error(1)
}

// MockChatCompleter mocks repository.ChatCompleter.
type MockChatCompleter struct {
	mock.Mock
}

func (m *MockChatCompleter) Complete(ctx context.Context, turns []domain.ChatTurn) (string, error) {
	args := m.Called(ctx, turns)
	return args.String(0), args.Error(1)
}

// MockCareerPathRepo mocks repository.CareerPathRepo.
type MockCareerPathRepo struct {
	mock.Mock
}

func (m *MockCareerPathRepo) AutoMigrate() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockCareerPathRepo) Seed() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockCareerPathRepo) List(category string) ([]domain.CareerPath, error) {
	args := m.Called(category)
	if paths, ok := args.Get(0).([]domain.CareerPath); ok {
		return paths, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCareerPathRepo) Search(keyword string) ([]domain.CareerPath, error) {
	args := m.Called(keyword)
	if paths, ok := args.Get(0).([]domain.CareerPath); ok {
		return paths, args.Error(1)
	}
	return nil, args.Error(1)
}
