// Package repository defines sentinel errors reused across repositories so
// handlers can map failures to HTTP statuses without inspecting SQL errors.
package repository

import "errors"

// ErrAccountExists is returned when a registration collides with any unique
// key of its collection (phone for farmers; phone, email, license number or
// aadhar for officers). Handlers translate this into HTTP 400, matching the
// original clients.
var ErrAccountExists = errors.New("account already exists")

// ErrNotFound is returned when a lookup matches no row. It replaces
// sql.ErrNoRows at the repository boundary.
var ErrNotFound = errors.New("not found")

// ErrForbidden is returned when the caller attempts an operation on a
// resource owned by someone else, e.g. an officer updating another officer's
// task. Handlers translate this into HTTP 403.
var ErrForbidden = errors.New("forbidden")
