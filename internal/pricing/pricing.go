// Package pricing computes cart totals. All functions are pure and operate on
// integer amounts in the minor currency unit, so there is no floating-point
// rounding error to manage.
package pricing

import "shopease/internal/domain"

// TaxRatePercent is the flat tax applied to every cart subtotal.
const TaxRatePercent = 10

// Subtotal sums effective unit price times quantity over all line items.
func Subtotal(items []domain.CartItem) int64 {
	var sum int64
	for _, item := range items {
		sum += item.Product.EffectivePrice() * int64(item.Quantity)
	}
	return sum
}

// Tax is the flat tax on a subtotal, rounded to the nearest minor unit.
func Tax(subtotal int64) int64 {
	return roundPercent(subtotal, TaxRatePercent)
}

// Discount is the coupon reduction on a subtotal, zero when no coupon is
// applied. Coupon percentages must not exceed 100.
func Discount(subtotal int64, coupon *domain.Coupon) int64 {
	if coupon == nil {
		return 0
	}
	return roundPercent(subtotal, coupon.Percent)
}

// Total is subtotal plus tax minus coupon discount.
func Total(items []domain.CartItem, coupon *domain.Coupon) int64 {
	subtotal := Subtotal(items)
	return subtotal + Tax(subtotal) - Discount(subtotal, coupon)
}

// roundPercent computes amount*pct/100 rounded half away from zero, which
// matches Math.round in the reference storefront for the non-negative amounts
// used here.
func roundPercent(amount int64, pct int) int64 {
	return (amount*int64(pct) + 50) / 100
}
