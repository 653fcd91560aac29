package metrics

// TokenUsage captures LLM token counts used to satisfy a request.
type TokenUsage struct {
	PromptTokens     int `json:"promptTokens"`
	CompletionTokens int `json:"completionTokens,omitempty"`
	ToolTokens       int `json:"toolTokens,omitempty"`
	TotalTokens      int `json:"totalTokens"`
}

// IsZero reports whether usage data is absent.
func (u TokenUsage) IsZero() bool {
	return u.PromptTokens == 0 && u.CompletionTokens == 0 && u.ToolTokens == 0 && u.TotalTokens == 0
}

// LogAttrs flattens usage into slog key/value pairs.
func (u TokenUsage) LogAttrs() []any {
	return []any{
		"prompt_tokens", u.PromptTokens,
		"completion_tokens", u.CompletionTokens,
		"tool_tokens", u.ToolTokens,
		"total_tokens", u.TotalTokens,
	}
}
