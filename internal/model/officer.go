package model

import "time"

// Officer represents a row in the `officers` table. Agricultural officers
// authenticate with their license number and have four independently unique
// natural keys: phone, email, license number and aadhar. Uniqueness is scoped
// to this collection only; the same phone may also exist as a farmer account.
type Officer struct {
	ID            uint64    `json:"id"`
	Name          string    `json:"name"`
	Phone         string    `json:"phone"`
	PasswordHash  string    `json:"-"`
	Location      string    `json:"location"`
	Email         string    `json:"email"`
	LicenseNumber string    `json:"licenseNumber"`
	Aadhar        string    `json:"aadhar"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
