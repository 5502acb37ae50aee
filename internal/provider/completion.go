package provider

// CompletionRequest is a two-message prompt for a language-model provider.
// The provider supplies the model name from its own configuration.
type CompletionRequest struct {
	System      string
	User        string
	Temperature float64
	MaxTokens   int
}

// Article is readable text extracted from a web page.
type Article struct {
	Title string
	Text  string
	URL   string
}
