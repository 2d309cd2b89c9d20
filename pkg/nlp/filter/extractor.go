// FILE: pkg/nlp/filter/extractor.go
// PURPOSE: Turn a free-form utterance into a typed catalog filter Record
package filter

import (
	"strconv"
	"strings"

	"beauty-assistant-be/pkg/nlp/lexicon"
	"beauty-assistant-be/pkg/nlp/tokenizer"
)

// Extractor parses utterances against the static lexicon. It is pure and
// deterministic: the same utterance always yields the same Record.
type Extractor struct {
	tokenizer tokenizer.Tokenizer
}

func NewExtractor(tok tokenizer.Tokenizer) *Extractor {
	return &Extractor{tokenizer: tok}
}

// Extract walks the utterance once per dimension:
//
//	gender    : token membership, priority male > female > unisex
//	skin/hair : substring match over the lower-cased utterance, first match wins
//	category  : first lexicon member present among the tokens (lexicon order)
//	price     : numeric words, "under X" sets the max bound, otherwise the min
func (e *Extractor) Extract(utterance string) Record {
	var rec Record

	tokens := e.tokenizer.Tokenize(utterance)
	tokenSet := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		tokenSet[t] = struct{}{}
	}
	lower := strings.ToLower(utterance)

	if _, ok := tokenSet[lexicon.GenderTokenMale]; ok {
		rec.Gender = GenderMale
	} else if _, ok := tokenSet[lexicon.GenderTokenFemale]; ok {
		rec.Gender = GenderFemale
	} else if _, ok := tokenSet[lexicon.GenderTokenUnisex]; ok {
		rec.Gender = GenderUnisex
	} else if strings.Contains(lower, lexicon.GenderPhraseAllKinds) {
		rec.Gender = GenderUnisex
	}

	for _, st := range lexicon.SkinTypes {
		if strings.Contains(lower, st) {
			rec.SkinType = SkinType(st)
			break
		}
	}

	for _, ht := range lexicon.HairTypes {
		if strings.Contains(lower, ht) {
			rec.HairType = HairType(ht)
			break
		}
	}

	for _, category := range lexicon.Categories {
		if _, ok := tokenSet[category]; ok {
			rec.Category = category
			break
		}
	}

	e.extractPrices(utterance, &rec)

	// Hold the record invariant: a min above the max is discarded.
	if rec.PriceMin != nil && rec.PriceMax != nil && *rec.PriceMin > *rec.PriceMax {
		rec.PriceMin = nil
	}

	return rec
}

// extractPrices splits the original utterance on whitespace rather than using
// the tokenizer: the "$" prefix and the preceding "under" keyword must be seen
// exactly as typed. Later numeric words overwrite earlier ones.
func (e *Extractor) extractPrices(utterance string, rec *Record) {
	words := strings.Fields(utterance)
	for i, word := range words {
		candidate := strings.TrimPrefix(word, "$")
		if !isNumericWord(candidate) {
			continue
		}
		price, err := strconv.ParseFloat(candidate, 64)
		if err != nil {
			continue
		}
		if i > 0 && words[i-1] == "under" {
			rec.PriceMax = &price
		} else {
			rec.PriceMin = &price
		}
	}
}

// isNumericWord accepts words that are all digits once dots are removed,
// e.g. "20", "19.99". An empty remainder (a bare "$") is rejected.
func isNumericWord(word string) bool {
	stripped := strings.ReplaceAll(word, ".", "")
	if stripped == "" {
		return false
	}
	for _, r := range stripped {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
