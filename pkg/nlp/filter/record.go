package filter

// Enumerated filter dimensions. The empty string means the field is unset and
// contributes no predicate to the catalog query.
type Gender string

const (
	GenderUnset  Gender = ""
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderUnisex Gender = "unisex"
)

// SkinType and HairType carry the full lexicon phrase ("dry skin", "curly hair")
// because that is what the catalog stores in its columns.
type SkinType string

type HairType string

// Record is the structured extraction of a product query. All fields are
// optional; price bounds are pointers so zero prices stay representable.
type Record struct {
	Gender   Gender
	SkinType SkinType
	HairType HairType
	Category string
	PriceMin *float64
	PriceMax *float64
}

// QueryType resolves the label used by the response formatter: the category
// when one was extracted, the generic "products" otherwise.
func (r Record) QueryType() string {
	if r.Category != "" {
		return r.Category
	}
	return "products"
}

// IsZero reports whether no filter dimension is set.
func (r Record) IsZero() bool {
	return r.Gender == GenderUnset &&
		r.SkinType == "" &&
		r.HairType == "" &&
		r.Category == "" &&
		r.PriceMin == nil &&
		r.PriceMax == nil
}
