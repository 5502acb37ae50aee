package analysis

import (
	"fmt"

	"github.com/heartmarshall/lesehilfe/internal/provider"
)

const systemPrompt = `You are an experienced teacher of German for Russian-speaking learners.
Write every explanation in Russian. German words and sentences stay in German.

Respond with a single JSON object and nothing else: no markdown, no code fences, no comments.
The object must have exactly these two top-level fields:
{
  "grammarDetailsAndUsage": "<HTML fragment in Russian>",
  "example": {"german": "<German sentence>", "russian": "<Russian translation>"}
}

Format "grammarDetailsAndUsage" as inline HTML using only <p>, <br>, <b>, <i>, <ul> and <li>.
Wrap the key grammatical points in <b> and German forms in <i>.`

// buildPrompt creates the two-message prompt for one word in its text.
func buildPrompt(word, text string, opts Options) provider.CompletionRequest {
	user := fmt.Sprintf(`Analyze the German word "%s" as it is used in the following text:

"""
%s
"""

In "grammarDetailsAndUsage" cover:
1. The base (dictionary) form: for a noun give the definite article and the plural, for a verb give the infinitive and mark it with "sich" if it is reflexive.
2. What the word means in this particular context.
3. Its grammar here: part of speech, gender, case, number, tense or conjugation as applicable.
4. Function words that belong with it: prepositions, governed case, separable prefixes, typical collocations.

In "example" give exactly one new, natural German sentence that uses the word, and its Russian translation.`, word, text)

	return provider.CompletionRequest{
		System:      systemPrompt,
		User:        user,
		Temperature: opts.Temperature,
		MaxTokens:   opts.MaxTokens,
	}
}
