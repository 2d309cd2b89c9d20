package tokenizer

import "strings"

// Tokenizer turns an utterance into a sequence of tokens. The dialog pipeline
// depends on this interface so the tokenization backend can be swapped without
// touching the extractor.
type Tokenizer interface {
	Tokenize(text string) []string
}

// SimpleTokenizer lower-cases the input, splits on whitespace and strips
// surrounding punctuation from each token. Good enough for the keyword-level
// matching the extractor performs.
type SimpleTokenizer struct{}

func NewSimpleTokenizer() *SimpleTokenizer {
	return &SimpleTokenizer{}
}

func (t *SimpleTokenizer) Tokenize(text string) []string {
	fields := strings.Fields(strings.ToLower(text))
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.Trim(f, ".,!?;:\"'()[]")
		if f != "" {
			tokens = append(tokens, f)
		}
	}
	return tokens
}
