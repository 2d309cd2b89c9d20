// FILE: pkg/nlp/intent/intent.go
// PURPOSE: Keyword predicates that classify an utterance before dispatch
package intent

import (
	"strings"

	"beauty-assistant-be/pkg/nlp/lexicon"
)

// IsGreeting reports whether the utterance contains any greeting phrase.
func IsGreeting(utterance string) bool {
	lower := strings.ToLower(utterance)
	for _, g := range lexicon.Greetings {
		if strings.Contains(lower, g) {
			return true
		}
	}
	return false
}

// IsProductListingRequest reports whether the utterance asks for a product
// listing. Only when this is true does the pipeline consult the catalog.
func IsProductListingRequest(utterance string) bool {
	lower := strings.ToLower(utterance)
	for _, kw := range lexicon.ProductListingTriggers {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
