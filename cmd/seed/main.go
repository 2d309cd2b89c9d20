package main

import (
	"log"
	"os"

	"beauty-assistant-be/internal/model"
	"beauty-assistant-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
)

func main() {
	// Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	color.Cyan("Seeding Product Catalog...")

	products := []model.Product{
		{Name: "Hydra Glow Serum", Brand: "Lumineux", Price: "29.99", Description: "Hyaluronic serum for daily hydration", SkinType: "dry skin", Ingredients: "hyaluronic acid, glycerin", Category: "serum", Gender: "unisex"},
		{Name: "Velvet Matte Lipstick", Brand: "Rouge Atelier", Price: "18.50", Description: "Long-wear matte lipstick in warm red", Ingredients: "shea butter, carnauba wax", Category: "lipstick", Gender: "female"},
		{Name: "Charcoal Detox Soap", Brand: "PureBar", Price: "7.99", Description: "Deep-cleansing bar for oily skin", SkinType: "oily skin", Ingredients: "activated charcoal, tea tree oil", Category: "soap", Gender: "unisex"},
		{Name: "Silk Repair Shampoo", Brand: "Maneframe", Price: "14.00", Description: "Restorative shampoo for damaged strands", HairType: "dry hair", Ingredients: "argan oil, keratin", Category: "haircare", Gender: "unisex"},
		{Name: "Curl Define Cream", Brand: "Maneframe", Price: "16.25", Description: "Leave-in cream that tames frizz", HairType: "curly hair", Ingredients: "shea butter, coconut oil", Category: "cream", SkinType: "normal skin", Gender: "female"},
		{Name: "Cedar & Sage Cologne", Brand: "North Pines", Price: "54.00", Description: "Woody fragrance with a fresh finish", Ingredients: "cedarwood, clary sage", Category: "perfume", Gender: "male"},
		{Name: "Gentle Foam Cleanser", Brand: "Lumineux", Price: "12.75", Description: "Low-pH cleanser for sensitive skin", SkinType: "sensitive skin", Ingredients: "oat extract, panthenol", Category: "cleanser", Gender: "unisex"},
		{Name: "Sunrise BB Cream", Brand: "Rouge Atelier", Price: "21.00", Description: "Light coverage with SPF 30", SkinType: "normal skin", Ingredients: "zinc oxide, niacinamide", Category: "bb cream", Gender: "female"},
		{Name: "Deep Sea Face Mask", Brand: "PureBar", Price: "9.50", Description: "Mineral clay mask for weekly detox", SkinType: "oily skin", Ingredients: "kelp, kaolin clay", Category: "face mask", Gender: "unisex"},
		{Name: "Everyday Body Wash", Brand: "North Pines", Price: "8.99", Description: "Mild body wash for all skin types", Ingredients: "aloe vera, chamomile", Category: "body wash", Gender: "unisex"},
	}

	for _, p := range products {
		var existing model.Product
		if err := db.Where("name = ? AND brand = ?", p.Name, p.Brand).First(&existing).Error; err == nil {
			color.Yellow("Product '%s' already exists, skipping...", p.Name)
			continue
		}

		if err := db.Create(&p).Error; err != nil {
			color.Red("Error creating product '%s': %v", p.Name, err)
		} else {
			color.Green("Created product: %s (%s)", p.Name, p.Category)
		}
	}

	color.Cyan("Seeding FAQ...")

	faqs := []model.FaqEntry{
		{Question: "What is your return policy for opened products?", Answer: "You can return any product within 30 days of purchase, even if opened, for a full refund."},
		{Question: "How long does shipping take?", Answer: "Standard shipping takes 3-5 business days. Express options are available at checkout."},
		{Question: "Are your products tested on animals?", Answer: "No. Our entire catalog is cruelty-free and we never test on animals."},
		{Question: "Do you offer samples with orders?", Answer: "Every order above $25 ships with two free samples of our newest products."},
		{Question: "Which payment methods do you accept?", Answer: "We accept all major credit cards, PayPal, and gift cards issued by our store."},
	}

	for _, f := range faqs {
		var existing model.FaqEntry
		if err := db.Where("question = ?", f.Question).First(&existing).Error; err == nil {
			color.Yellow("FAQ '%s' already exists, skipping...", f.Question)
			continue
		}

		if err := db.Create(&f).Error; err != nil {
			color.Red("Error creating FAQ '%s': %v", f.Question, err)
		} else {
			color.Green("Created FAQ: %s", f.Question)
		}
	}

	color.Cyan("Seeding completed!")
}
