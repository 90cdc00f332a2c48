package catalog

import (
	"context"
	"fmt"

	"shopkart_back_end/internal/models"
	"shopkart_back_end/internal/services"
)

// DefaultProducts est le catalogue de démarrage de la boutique.
var DefaultProducts = []models.Product{
	{ID: 1, Name: "Apple iPhone 14 (128GB)", Price: 69999, Rating: 4.6,
		ImageURL:    "https://m.media-amazon.com/images/I/61bK6PMOC3L._SX679_.jpg",
		Description: "A15 Bionic, advanced dual-camera system, all-day battery."},
	{ID: 2, Name: "Samsung Galaxy S23 5G", Price: 74999, Rating: 4.7,
		ImageURL:    "https://m.media-amazon.com/images/I/61VfL-aiToL._SX679_.jpg",
		Description: "Snapdragon flagship, Dynamic AMOLED display."},
	{ID: 3, Name: "OnePlus 11R 5G", Price: 39999, Rating: 4.4,
		ImageURL:    "https://m.media-amazon.com/images/I/61uA2UVnYWL._SX679_.jpg",
		Description: "Smooth OxygenOS, powerful performance."},
	{ID: 4, Name: "Redmi Note 13 Pro", Price: 25999, Rating: 4.3,
		ImageURL:    "https://m.media-amazon.com/images/I/71Zf9uUp+GL._SX679_.jpg",
		Description: "200MP camera, AMOLED display."},
	{ID: 5, Name: "Realme Narzo 60", Price: 17999, Rating: 4.1,
		ImageURL:    "https://m.media-amazon.com/images/I/51W91rRoHqL._SY300_SX300_QL70_FMwebp_.jpg",
		Description: "Budget-friendly with great performance."},
	{ID: 6, Name: "boAt Airdopes 141", Price: 1299, Rating: 4.2,
		ImageURL:    "https://m.media-amazon.com/images/I/61KNJav3S9L._SX679_.jpg",
		Description: "Wireless earbuds, long battery life."},
	{ID: 7, Name: "Apple AirPods Pro (2nd Gen)", Price: 24999, Rating: 4.8,
		ImageURL:    "https://m.media-amazon.com/images/I/61f1YfTkTDL._SX679_.jpg",
		Description: "ANC with immersive sound."},
	{ID: 8, Name: "HP Pavilion Laptop", Price: 58999, Rating: 4.3,
		ImageURL:    "https://m.media-amazon.com/images/I/71vFKBpKakL._SX679_.jpg",
		Description: "Intel i5 laptop for work & study."},
	{ID: 9, Name: "Lenovo IdeaPad Gaming 3", Price: 67999, Rating: 4.5,
		ImageURL:    "https://m.media-amazon.com/images/I/71WXtdqjdLL._SL1500_.jpg",
		Description: "RTX graphics, gaming ready."},
	{ID: 10, Name: "Noise Smart Watch Pro", Price: 3499, Rating: 4.0,
		ImageURL:    "https://m.media-amazon.com/images/I/61TapeOXotL._SX679_.jpg",
		Description: "AMOLED smartwatch with health tracking."},
}

// Seed insère le catalogue de démarrage dans ScyllaDB et l'indexe dans
// Elasticsearch.
func Seed(ctx context.Context) error {
	for _, p := range DefaultProducts {
		if err := SaveProduct(ctx, p); err != nil {
			return fmt.Errorf("seed produit %d: %w", p.ID, err)
		}
		services.IndexProduct(p)
	}
	return nil
}
