package openai

// chatRequest is the body of an OpenAI-compatible chat completion request.
type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// apiResponse covers both the legacy completion shape (choices[].text) and
// the chat shape (choices[].message.content).
type apiResponse struct {
	Choices []apiChoice `json:"choices"`
}

type apiChoice struct {
	Text    *string     `json:"text"`
	Message *apiMessage `json:"message"`
}

type apiMessage struct {
	Content *string `json:"content"`
}

// content returns the first non-empty completion text of the first choice.
func (r apiResponse) content() string {
	if len(r.Choices) == 0 {
		return ""
	}
	c := r.Choices[0]
	if c.Text != nil && *c.Text != "" {
		return *c.Text
	}
	if c.Message != nil && c.Message.Content != nil {
		return *c.Message.Content
	}
	return ""
}
