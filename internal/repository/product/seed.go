package product

import (
	"time"

	"shopease/internal/domain"
)

func paisa(v int64) *int64 { return &v }

// Catalog returns the fixed ShopEase product collection. Prices are in paisa.
func Catalog() []domain.Product {
	seededAt := time.Now().UTC()
	products := []domain.Product{
		{
			ID:                 1,
			Name:               "Premium Wireless Headphones",
			Description:        "Noise cancelling with 30h battery life",
			Price:              799900,
			DiscountPrice:      paisa(599900),
			DiscountPercentage: 25,
			Rating:             4.5,
			ReviewCount:        128,
			CategoryID:         1,
			Brand:              "SoundMax",
			ImageURL:           "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?auto=format&fit=crop&w=300&h=300&q=80",
			Stock:              50,
		},
		{
			ID:                 2,
			Name:               "Gaming Laptop 15.6\"",
			Description:        "16GB RAM, 512GB SSD, RTX 3060",
			Price:              8999900,
			DiscountPrice:      paisa(7649900),
			DiscountPercentage: 15,
			Rating:             4.0,
			ReviewCount:        86,
			CategoryID:         1,
			Brand:              "TechPro",
			ImageURL:           "https://images.unsplash.com/photo-1531297484001-80022131f5a1?auto=format&fit=crop&w=300&h=300&q=80",
			Stock:              10,
		},
		{
			ID:                 3,
			Name:               "Pro Running Shoes",
			Description:        "Lightweight sports shoes with cushioning",
			Price:              649900,
			DiscountPrice:      paisa(449900),
			DiscountPercentage: 31,
			Rating:             5.0,
			ReviewCount:        219,
			CategoryID:         2,
			Brand:              "SportFlex",
			ImageURL:           "https://images.unsplash.com/photo-1542291026-7eec264c27ff?auto=format&fit=crop&w=300&h=300&q=80",
			Stock:              75,
		},
		{
			ID:                 4,
			Name:               "Premium Smartwatch",
			Description:        "Fitness tracker with heart rate monitor",
			Price:              1299900,
			DiscountPrice:      paisa(1049900),
			DiscountPercentage: 19,
			Rating:             4.5,
			ReviewCount:        156,
			CategoryID:         1,
			Brand:              "FitTech",
			ImageURL:           "https://images.unsplash.com/photo-1523275335684-37898b6baf30?auto=format&fit=crop&w=300&h=300&q=80",
			Stock:              30,
		},
		{
			ID:                 5,
			Name:               "Wireless Earbuds Pro",
			Description:        "Superior sound quality with noise cancellation",
			Price:              499900,
			DiscountPrice:      paisa(299900),
			DiscountPercentage: 40,
			Rating:             4.7,
			ReviewCount:        325,
			CategoryID:         1,
			Brand:              "AudioPlus",
			ImageURL:           "https://images.unsplash.com/photo-1585060544812-6b45742d762f?auto=format&fit=crop&w=300&h=300&q=80",
			Stock:              15,
		},
		{
			ID:                 6,
			Name:               "Vintage Polaroid Camera",
			Description:        "Instant photo printing with classic design",
			Price:              699900,
			DiscountPrice:      paisa(349900),
			DiscountPercentage: 50,
			Rating:             4.0,
			ReviewCount:        89,
			CategoryID:         1,
			Brand:              "RetroSnap",
			ImageURL:           "https://images.unsplash.com/photo-1526170375885-4d8ecf77b99f?auto=format&fit=crop&w=300&h=300&q=80",
			Stock:              8,
		},
		{
			ID:                 7,
			Name:               "Bluetooth Party Speaker",
			Description:        "Powerful bass with RGB lighting effects",
			Price:              449900,
			DiscountPrice:      paisa(179900),
			DiscountPercentage: 60,
			Rating:             5.0,
			ReviewCount:        112,
			CategoryID:         1,
			Brand:              "BeatBox",
			ImageURL:           "https://images.unsplash.com/photo-1608156639585-b3a032ef9689?auto=format&fit=crop&w=300&h=300&q=80",
			Stock:              20,
		},
		{
			ID:                 8,
			Name:               "Smart Fitness Watch",
			Description:        "Health monitoring with exercise tracking",
			Price:              799900,
			DiscountPrice:      paisa(599900),
			DiscountPercentage: 25,
			Rating:             4.2,
			ReviewCount:        178,
			CategoryID:         1,
			Brand:              "FitTech",
			ImageURL:           "https://images.unsplash.com/photo-1546868871-7041f2a55e12?auto=format&fit=crop&w=300&h=300&q=80",
			Stock:              25,
		},
	}
	for i := range products {
		products[i].CreatedAt = seededAt
	}
	return products
}
