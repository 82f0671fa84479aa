package model

import "time"

// Role names carried inside session tokens. Farmer and officer tokens are
// signed with different secrets, so the role claim is a cross-check rather
// than the security boundary.
const (
	RoleFarmer  = "FARMER"
	RoleOfficer = "OFFICER"
)

// Farmer represents a row in the `farmers` table. A farmer registers with a
// phone number (unique within the collection) and owns an ordered list of
// chat message references stored in `chat_refs`.
//
// Fields:
//  ID           – primary key identifier.
//  Name         – display name.
//  Phone        – unique phone number, the login key.
//  PasswordHash – bcrypt hashed password, never serialized.
//  Location     – free-text location (panchayat/district).
//  CreatedAt    – timestamp of registration.
//  UpdatedAt    – timestamp of last update.
type Farmer struct {
	ID           uint64    `json:"id"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone"`
	PasswordHash string    `json:"-"`
	Location     string    `json:"location"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
