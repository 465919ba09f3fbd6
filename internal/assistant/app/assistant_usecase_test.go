package app

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"guidelight/internal/assistant/domain"
)

func newTestAssistant() (AssistantUseCase, *MockWebSearcher, *MockChatCompleter, *MockCareerPathRepo) {
	searcher := new(MockWebSearcher)
	llm := new(MockChatCompleter)
	paths := new(MockCareerPathRepo)
	return NewAssistantUseCase(searcher, llm, paths), searcher, llm, paths
}

func TestAskFeedsSearchContextToLLM(t *testing.T) {
	uc, searcher, llm, _ := newTestAssistant()

	searcher.On("Search", mock.Anything, "is CS worth it").Return([]domain.SearchResult{
		{Title: "CS degrees in 2026", Source: "example.edu", Snippet: "Still in demand."},
	}, nil)
	llm.On("Complete", mock.Anything, mock.MatchedBy(func(turns []domain.ChatTurn) bool {
		if len(turns) != 2 || turns[0].Role != "system" {
			return false
		}
		last := turns[len(turns)-1]
		return last.Role == "user" &&
			strings.Contains(last.Content, "Question: is CS worth it") &&
			strings.Contains(last.Content, "Snippet: Still in demand.")
	})).Return("Yes, and here is why.", nil)

	answer := uc.Ask(context.Background(), "is CS worth it", nil)

	assert.Equal(t, "Yes, and here is why.", answer)
}

func TestAskKeepsConversationHistory(t *testing.T) {
	uc, searcher, llm, _ := newTestAssistant()

	searcher.On("Search", mock.Anything, mock.Anything).Return(nil, nil)
	history := []domain.ChatTurn{
		{Role: "user", Content: "hello"},
		{Role: "assistant", Content: "hi there"},
	}
	llm.On("Complete", mock.Anything, mock.MatchedBy(func(turns []domain.ChatTurn) bool {
		return len(turns) == 4 && turns[1].Content == "hello" && turns[2].Content == "hi there"
	})).Return("continuing", nil)

	answer := uc.Ask(context.Background(), "next question", history)

	assert.Equal(t, "continuing", answer)
}

func TestAskSwallowsSearchFailure(t *testing.T) {
	uc, searcher, llm, _ := newTestAssistant()

	searcher.On("Search", mock.Anything, mock.Anything).Return(nil, errors.New("quota exceeded"))
	llm.On("Complete", mock.Anything, mock.Anything).Return("answer without context", nil)

	answer := uc.Ask(context.Background(), "anything", nil)

	assert.Equal(t, "answer without context", answer)
}

func TestAskFallsBackOnLLMFailure(t *testing.T) {
	uc, searcher, llm, _ := newTestAssistant()

	searcher.On("Search", mock.Anything, mock.Anything).Return(nil, nil)
	llm.On("Complete", mock.Anything, mock.Anything).Return("", errors.New("upstream down"))

	answer := uc.Ask(context.Background(), "anything", nil)

	assert.Equal(t, fallbackAnswer, answer)
}

func TestSuggestPathsStripsCodeFences(t *testing.T) {
	uc, _, llm, _ := newTestAssistant()

	llm.On("Complete", mock.Anything, mock.Anything).Return(
		"```json\n[{\"name\":\"Cybersecurity\",\"category\":\"Technology\",\"reason\":\"shortage\"}]\n```", nil)

	suggestions := uc.SuggestPaths(context.Background(), []string{"Technology"})

	assert.Len(t, suggestions, 1)
	assert.Equal(t, "Cybersecurity", suggestions[0].Name)
}

func TestSuggestPathsDropsMalformedJSON(t *testing.T) {
	uc, _, llm, _ := newTestAssistant()

	llm.On("Complete", mock.Anything, mock.Anything).Return("Sure! Here are some ideas:", nil)

	suggestions := uc.SuggestPaths(context.Background(), []string{"Design"})

	assert.Empty(t, suggestions)
}

func TestListPathsRoutesKeywordToSearch(t *testing.T) {
	uc, _, _, paths := newTestAssistant()

	paths.On("Search", "cloud").Return([]domain.CareerPath{{Name: "Cloud Architecture (AWS/Azure)"}}, nil)
	paths.On("List", "Design").Return([]domain.CareerPath{{Name: "UX/UI Design"}}, nil)

	byKeyword, err := uc.ListPaths(context.Background(), "", "cloud")
	assert.NoError(t, err)
	assert.Len(t, byKeyword, 1)

	byCategory, err := uc.ListPaths(context.Background(), "Design", "")
	assert.NoError(t, err)
	assert.Equal(t, "UX/UI Design", byCategory[0].Name)
}

func TestStripCodeFences(t *testing.T) {
	assert.Equal(t, `[{"a":1}]`, stripCodeFences("```json\n[{\"a\":1}]\n```"))
	assert.Equal(t, `[{"a":1}]`, stripCodeFences("```\n[{\"a\":1}]\n```"))
	assert.Equal(t, `[{"a":1}]`, stripCodeFences(`[{"a":1}]`))
}
