package category

import "shopease/internal/domain"

// Catalog returns the fixed ShopEase category list.
func Catalog() []domain.Category {
	return []domain.Category{
		{ID: 1, Name: "Electronics", Icon: "fas fa-mobile-alt"},
		{ID: 2, Name: "Fashion", Icon: "fas fa-tshirt"},
		{ID: 3, Name: "Home", Icon: "fas fa-couch"},
		{ID: 4, Name: "Books", Icon: "fas fa-book"},
		{ID: 5, Name: "Beauty", Icon: "fas fa-spa"},
		{ID: 6, Name: "Sports", Icon: "fas fa-futbol"},
	}
}
