package model

import "time"

type Address struct {
	ID           int64     `json:"id"`
	UserPhone    string    `json:"user_phone"`
	Label        string    `json:"label"`
	AddressLine1 string    `json:"address_line1"`
	AddressLine2 string    `json:"address_line2"`
	City         string    `json:"city"`
	State        string    `json:"state"`
	Pincode      string    `json:"pincode"`
	IsDefault    bool      `json:"is_default"`
	CreatedAt    time.Time `json:"created_at"`
}

// String formats the address as a single delivery line.
func (a Address) String() string {
	s := a.AddressLine1
	if a.AddressLine2 != "" {
		s += ", " + a.AddressLine2
	}
	return s + ", " + a.City + ", " + a.State + " - " + a.Pincode
}
