package domain

import "time"

type Product struct {
	ID                 int       `json:"id"`
	Name               string    `json:"name"`
	Description        string    `json:"description"`
	Price              int64     `json:"price"`
	DiscountPrice      *int64    `json:"discountPrice,omitempty"`
	DiscountPercentage int       `json:"discountPercentage,omitempty"`
	Rating             float64   `json:"rating"`
	ReviewCount        int       `json:"reviewCount"`
	CategoryID         int       `json:"categoryId"`
	Brand              string    `json:"brand"`
	ImageURL           string    `json:"imageUrl"`
	Stock              int       `json:"stock"`
	CreatedAt          time.Time `json:"createdAt"`
}

// EffectivePrice is the amount actually charged: the discount price when one
// is set, the base price otherwise. All amounts are in the minor currency
// unit (paisa).
func (p Product) EffectivePrice() int64 {
	if p.DiscountPrice != nil {
		return *p.DiscountPrice
	}
	return p.Price
}
