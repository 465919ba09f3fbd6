package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"guidelight/internal/assistant/domain"
	"guidelight/pkg/logger"
)

const googleSearchURL = "https://www.googleapis.com/customsearch/v1"

// searchSuffix narrows web hits to education content.
const searchSuffix = " education college course details reviews"

// WebSearcher finds grounding context for assistant answers.
type WebSearcher interface {
	Search(ctx context.Context, query string) ([]domain.SearchResult, error)
}

type googleSearchClient struct {
	apiKey  string
	cxID    string
	baseURL string
	client  *http.Client
}

// NewGoogleSearchClient create a Google Custom Search client.
func NewGoogleSearchClient(apiKey, cxID string, timeout time.Duration) WebSearcher {
	return &googleSearchClient{
		apiKey:  apiKey,
		cxID:    cxID,
		baseURL: googleSearchURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// Search degrades to an empty result set on missing keys or upstream
// failure. The assistant answers without context in that case.
func (g *googleSearchClient) Search(ctx context.Context, query string) ([]domain.SearchResult, error) {
	if g.apiKey == "" || g.cxID == "" {
		logger.Log.Warn("google search keys missing, skipping web search")
		return nil, nil
	}

	reqURL := fmt.Sprintf("%s?key=%s&cx=%s&q=%s",
		g.baseURL, g.apiKey, g.cxID, url.QueryEscape(query+searchSuffix))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := g.client.Do(req)
	if err != nil {
		logger.Log.Error("web search failed", zap.String("err", err.Error()))
		return nil, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Log.Error("web search bad status", zap.Int("status", resp.StatusCode))
		return nil, nil
	}

	var body struct {
		Items []struct {
			Title       string `json:"title"`
			Link        string `json:"link"`
			Snippet     string `json:"snippet"`
			DisplayLink string `json:"displayLink"`
		} `json:"items"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		logger.Log.Error("web search decode failed", zap.String("err", err.Error()))
		return nil, nil
	}

	results := make([]domain.SearchResult, 0, len(body.Items))
	for _, item := range body.Items {
		source := item.DisplayLink
		if source == "" {
			if u, err := url.Parse(item.Link); err == nil {
				source = u.Hostname()
			}
		}
		results = append(results, domain.SearchResult{
			Title:   item.Title,
			Link:    item.Link,
			Snippet: item.Snippet,
			Source:  source,
		})
	}
	return results, nil
}
