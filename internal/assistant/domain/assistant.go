package domain

// SearchResult is one web hit handed to the LLM as grounding context.
type SearchResult struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
	Source  string `json:"source"`
}

// ChatTurn is one message of an assistant conversation.
type ChatTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// PathSuggestion is the structured answer of the suggestion prompt.
type PathSuggestion struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Reason   string `json:"reason"`
}
