package model

import "time"

// Scheme is a government programme shown to farmers.
type Scheme struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Benefits    string    `json:"benefits"`
	Eligibility string    `json:"eligibility"`
	HowToApply  string    `json:"how_to_apply"`
	Department  string    `json:"department"`
	WebsiteURL  string    `json:"website_url"`
	ContactInfo string    `json:"contact_info"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}
