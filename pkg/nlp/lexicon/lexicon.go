// FILE: pkg/nlp/lexicon/lexicon.go
// PURPOSE: Static vocabulary tables shared by intent detection and filter extraction
package lexicon

// Greetings are matched as substrings of the lower-cased utterance.
var Greetings = []string{
	"hello", "hi", "hey", "good morning", "good afternoon", "good evening", "howdy",
}

// ProductListingTriggers gate the catalog branch of the dialog pipeline.
var ProductListingTriggers = []string{
	"products", "available products", "give products", "what products", "show me products",
}

// Categories is order-significant: the first member found among the utterance
// tokens wins. Multi-word entries never match a single token and are kept for
// parity with the catalog's category column values.
var Categories = []string{
	"soap", "cleanser", "shower gel", "cream", "perfume", "lipstick", "body lotion",
	"haircare", "mascara", "blush", "serum", "face oil", "contour", "bb cream", "exfoliator",
	"eyeliner", "concealer", "cc cream", "face mask", "bronzer", "primer", "makeup remover",
	"powder", "eye shadow", "lip liner", "foundation", "setting spray", "deodorant", "body wash",
}

// SkinTypes and HairTypes are matched as substrings, so "for dry skin" hits "dry skin".
var SkinTypes = []string{"dry skin", "oily skin", "sensitive skin", "normal skin"}

var HairTypes = []string{"dry hair", "oily hair", "curly hair", "straight hair", "frizzy hair", "normal hair"}

// Gender vocabulary. "male"/"female"/"unisex" are token-level matches;
// "all genders" is a whole-string substring alias for unisex.
const (
	GenderTokenMale      = "male"
	GenderTokenFemale    = "female"
	GenderTokenUnisex    = "unisex"
	GenderPhraseAllKinds = "all genders"
)

// IsCategory reports whether s is a member of the category lexicon.
func IsCategory(s string) bool {
	for _, c := range Categories {
		if c == s {
			return true
		}
	}
	return false
}
