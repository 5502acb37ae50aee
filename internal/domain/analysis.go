package domain

// WordAnalysis is the grammar explanation and example produced for one word.
// GrammarDetailsAndUsage holds an HTML fragment written by the model.
type WordAnalysis struct {
	GrammarDetailsAndUsage string  `json:"grammarDetailsAndUsage"`
	Example                Example `json:"example"`
}

// Example is a German sentence with its Russian translation.
type Example struct {
	German  string `json:"german"`
	Russian string `json:"russian"`
}

// Flashcard is one two-sided note sent to the flashcard service.
type Flashcard struct {
	Front string
	Back  string
}

// FallbackAnalysis is shown when live analysis fails so that the reader still
// has something to study.
func FallbackAnalysis() WordAnalysis {
	return WordAnalysis{
		GrammarDetailsAndUsage: "<p><b>Анализ недоступен.</b> Не удалось получить разбор слова. " +
			"Ниже приведён пример: <i>das Haus</i>: существительное среднего рода, " +
			"мн. ч. <i>die Häuser</i>.</p>",
		Example: Example{
			German:  "Das Haus ist groß.",
			Russian: "Дом большой.",
		},
	}
}
