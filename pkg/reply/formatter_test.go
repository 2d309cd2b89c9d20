package reply

import (
	"fmt"
	"strings"
	"testing"
)

func sampleProducts(n int) []Product {
	products := make([]Product, 0, n)
	for i := 1; i <= n; i++ {
		products = append(products, Product{
			Name:        fmt.Sprintf("Product %d", i),
			Brand:       "Brand",
			Price:       "12.50",
			Description: "A gentle formula",
			SkinType:    "dry skin",
			HairType:    "curly hair",
		})
	}
	return products
}

func TestFormatProductsEmpty(t *testing.T) {
	got := FormatProducts(nil, "cream")
	if got != NoProductsMessage {
		t.Errorf("FormatProducts(nil) = %q, want the no-products sentinel", got)
	}
}

func TestFormatProductsHeaderAndBlocks(t *testing.T) {
	got := FormatProducts(sampleProducts(2), "cream")

	if !strings.HasPrefix(got, "Here are the top 2 cream:\n") {
		t.Errorf("header mismatch, got %q", got[:40])
	}
	if !strings.Contains(got, "1. **Product 1** by Brand") {
		t.Error("first block missing numbered bold name")
	}
	if !strings.Contains(got, "2. **Product 2** by Brand") {
		t.Error("second block missing")
	}
	if !strings.Contains(got, "   Price: $12.50\n") {
		t.Error("price line missing dollar prefix")
	}
	if !strings.Contains(got, "   Description: A gentle formula\n") {
		t.Error("description line missing")
	}

	rule := strings.Repeat("-", 40)
	if strings.Count(got, rule) != 2 {
		t.Errorf("want one 40-dash rule per block, got %d", strings.Count(got, rule))
	}
}

func TestFormatProductsConditionalFields(t *testing.T) {
	products := sampleProducts(1)

	t.Run("cream shows skin type", func(t *testing.T) {
		got := FormatProducts(products, "cream")
		if !strings.Contains(got, "   Skin Type: dry skin\n") {
			t.Error("skin type missing for cream query")
		}
		if strings.Contains(got, "Hair Type:") {
			t.Error("hair type must not render for cream query")
		}
	})

	t.Run("shampoo shows hair type", func(t *testing.T) {
		got := FormatProducts(products, "shampoo")
		if !strings.Contains(got, "   Hair Type: curly hair\n") {
			t.Error("hair type missing for shampoo query")
		}
		if strings.Contains(got, "Skin Type:") {
			t.Error("skin type must not render for shampoo query")
		}
	})

	t.Run("generic query shows neither", func(t *testing.T) {
		got := FormatProducts(products, "products")
		if strings.Contains(got, "Skin Type:") || strings.Contains(got, "Hair Type:") {
			t.Error("conditional fields must not render for generic query")
		}
	})

	t.Run("missing field is skipped", func(t *testing.T) {
		p := sampleProducts(1)
		p[0].SkinType = ""
		got := FormatProducts(p, "cream")
		if strings.Contains(got, "Skin Type:") {
			t.Error("empty skin type must not render")
		}
	})
}

func TestFormatProductsCapsAtTen(t *testing.T) {
	got := FormatProducts(sampleProducts(14), "products")

	if !strings.HasPrefix(got, "Here are the top 10 products:\n") {
		t.Errorf("header should report 10, got %q", strings.SplitN(got, "\n", 2)[0])
	}
	if !strings.Contains(got, "10. **Product 10**") {
		t.Error("tenth block missing")
	}
	if strings.Contains(got, "11. **Product 11**") {
		t.Error("eleventh block must not render")
	}

	rule := strings.Repeat("-", 40)
	if strings.Count(got, rule) != 10 {
		t.Errorf("want exactly 10 rules, got %d", strings.Count(got, rule))
	}
}
