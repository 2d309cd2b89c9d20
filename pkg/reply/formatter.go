// FILE: pkg/reply/formatter.go
// PURPOSE: Render catalog results into the user-visible product listing
package reply

import (
	"fmt"
	"strings"
)

// maxListedProducts caps the rendered blocks regardless of result size.
const maxListedProducts = 10

// Product is the formatter's view of one catalog row. Price stays textual;
// the store owns numeric interpretation.
type Product struct {
	Name        string
	Brand       string
	Price       string
	Description string
	SkinType    string
	HairType    string
	Ingredients string
}

// FormatProducts renders up to ten numbered product blocks under a header
// parameterized by queryType (the resolved category, or "products"). Skin
// type is shown for cream queries and hair type for shampoo queries, when
// the row carries the field. Blocks are separated by a 40-dash rule.
func FormatProducts(products []Product, queryType string) string {
	if len(products) == 0 {
		return NoProductsMessage
	}

	shown := len(products)
	if shown > maxListedProducts {
		shown = maxListedProducts
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Here are the top %d %s:\n", shown, queryType)

	for idx, product := range products[:shown] {
		fmt.Fprintf(&b, "\n%d. **%s** by %s\n", idx+1, product.Name, product.Brand)
		fmt.Fprintf(&b, "   Price: $%s\n", product.Price)
		fmt.Fprintf(&b, "   Description: %s\n", product.Description)
		if queryType == "cream" && product.SkinType != "" {
			fmt.Fprintf(&b, "   Skin Type: %s\n", product.SkinType)
		}
		if queryType == "shampoo" && product.HairType != "" {
			fmt.Fprintf(&b, "   Hair Type: %s\n", product.HairType)
		}
		b.WriteString(strings.Repeat("-", 40))
	}

	return b.String()
}
