package providers

// CompletionResponse is the provider-neutral result of a single chat
// turn. Handlers shape their own JSON from it; it is never serialized
// directly.
type CompletionResponse struct {
	ID       string
	Model    string
	Response string
	Usage    Usage
}

// Usage reports the token spend of one completion, logged per request
// to keep an eye on provider cost.
type Usage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}
