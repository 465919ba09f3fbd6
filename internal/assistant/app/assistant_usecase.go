package app

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"guidelight/internal/assistant/domain"
	"guidelight/internal/assistant/repository"
	"guidelight/pkg/logger"
)

const systemPrompt = "You are a helpful education and career counselor. " +
	"Answer the user's question detailedly using the provided search context. Cite sources where possible."

// fallbackAnswer is what the client sees whenever the knowledge
// pipeline fails. The endpoint never surfaces an error.
const fallbackAnswer = "I'm having trouble connecting to my knowledge base right now. Please try again."

const suggestPrompt = "Based on these interests: %s, suggest up to three career paths. " +
	"Respond with only a JSON array of objects with fields name, category and reason."

// AssistantUseCase is the application service for the AI career
// assistant.
type AssistantUseCase interface {
	Ask(ctx context.Context, question string, history []domain.ChatTurn) string
	SuggestPaths(ctx context.Context, interests []string) []domain.PathSuggestion
	ListPaths(ctx context.Context, category, keyword string) ([]domain.CareerPath, error)
}

type assistantUseCase struct {
	searcher WebSearcher
	llm      ChatCompleter
	paths    repository.CareerPathRepo
}

// WebSearcher and ChatCompleter alias the repository boundaries so
// the usecase can be wired with fakes.
type (
	WebSearcher   = repository.WebSearcher
	ChatCompleter = repository.ChatCompleter
)

// NewAssistantUseCase create an AssistantUseCase
func NewAssistantUseCase(searcher WebSearcher, llm ChatCompleter, paths repository.CareerPathRepo) AssistantUseCase {
	return &assistantUseCase{
		searcher: searcher,
		llm:      llm,
		paths:    paths,
	}
}

// Ask grounds the question with a web search, then asks the LLM.
// Search failure shrinks the context; LLM failure yields the canned
// fallback.
func (a *assistantUseCase) Ask(ctx context.Context, question string, history []domain.ChatTurn) string {
	results, err := a.searcher.Search(ctx, question)
	if err != nil {
		logger.Log.Error("assistant search failed", zap.String("err", err.Error()))
		results = nil
	}

	contextBlocks := make([]string, 0, len(results))
	for _, r := range results {
		contextBlocks = append(contextBlocks,
			fmt.Sprintf("Title: %s\nSource: %s\nSnippet: %s", r.Title, r.Source, r.Snippet))
	}

	turns := make([]domain.ChatTurn, 0, len(history)+2)
	turns = append(turns, domain.ChatTurn{Role: "system", Content: systemPrompt})
	turns = append(turns, history...)
	turns = append(turns, domain.ChatTurn{
		Role:    "user",
		Content: fmt.Sprintf("Question: %s\n\nSearch Context:\n%s", question, strings.Join(contextBlocks, "\n\n")),
	})

	answer, err := a.llm.Complete(ctx, turns)
	if err != nil {
		logger.Log.Error("assistant completion failed", zap.String("err", err.Error()))
		return fallbackAnswer
	}
	return answer
}

// SuggestPaths asks for structured JSON. Anything that does not parse
// is dropped silently and the caller gets an empty list.
func (a *assistantUseCase) SuggestPaths(ctx context.Context, interests []string) []domain.PathSuggestion {
	turns := []domain.ChatTurn{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: fmt.Sprintf(suggestPrompt, strings.Join(interests, ", "))},
	}

	raw, err := a.llm.Complete(ctx, turns)
	if err != nil {
		logger.Log.Error("path suggestion failed", zap.String("err", err.Error()))
		return nil
	}

	var suggestions []domain.PathSuggestion
	if err := json.Unmarshal([]byte(stripCodeFences(raw)), &suggestions); err != nil {
		logger.Log.Error("path suggestion unparsable", zap.String("err", err.Error()))
		return nil
	}
	return suggestions
}

// ListPaths serves the catalog; a keyword switches to search.
func (a *assistantUseCase) ListPaths(ctx context.Context, category, keyword string) ([]domain.CareerPath, error) {
	if keyword != "" {
		return a.paths.Search(keyword)
	}
	return a.paths.List(category)
}

// stripCodeFences removes a surrounding markdown fence, with or
// without a language tag.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if idx := strings.Index(s, "\n"); idx >= 0 && !strings.HasPrefix(s, "[") && !strings.HasPrefix(s, "{") {
		// drop the language tag line
		s = s[idx+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
