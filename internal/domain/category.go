package domain

type Category struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Icon     string `json:"icon,omitempty"`
	ImageURL string `json:"imageUrl,omitempty"`
}
