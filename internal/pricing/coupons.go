package pricing

import (
	"sort"
	"strings"

	"shopease/internal/domain"
)

// Coupon codes honored by the storefront. Codes are matched
// case-insensitively and stored uppercased on the cart.
var coupons = map[string]int{
	"SAVE10":    10,
	"WELCOME20": 20,
}

// LookupCoupon resolves a code to a coupon. The returned coupon carries the
// canonical uppercase code.
func LookupCoupon(code string) (domain.Coupon, bool) {
	canonical := strings.ToUpper(strings.TrimSpace(code))
	percent, ok := coupons[canonical]
	if !ok {
		return domain.Coupon{}, false
	}
	return domain.Coupon{Code: canonical, Percent: percent}, true
}

// CouponPercents lists the registered discount percentages in ascending
// order. Order validation uses it to bound acceptable client-computed totals.
func CouponPercents() []int {
	out := make([]int, 0, len(coupons))
	for _, p := range coupons {
		out = append(out, p)
	}
	sort.Ints(out)
	return out
}
