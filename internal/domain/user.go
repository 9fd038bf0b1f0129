package domain

import "time"

// User is a registered account. PasswordHash holds a bcrypt hash and is never
// serialized.
type User struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Email        string    `json:"email"`
	FullName     string    `json:"fullName"`
	PhoneNumber  string    `json:"phoneNumber,omitempty"`
	Address      Address   `json:"address"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Address is used both for user profiles and order shipping addresses.
type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
	Country string `json:"country"`
}
