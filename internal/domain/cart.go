package domain

// CartItem is one row in a cart: a distinct product and its quantity. LineID
// is a synthetic uniqueness token; lines coalesce by product id, so a cart
// holds at most one item per product.
type CartItem struct {
	LineID   string  `json:"id"`
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Coupon is a flat percentage discount on the cart subtotal. A cart holds at
// most one applied coupon.
type Coupon struct {
	Code    string `json:"code"`
	Percent int    `json:"percent"`
}
