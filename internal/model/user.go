package model

import (
	"strings"
	"time"
)

// UserID uniquely identifies a user on the backend
type UserID int64

// User is the identity record returned by the backend.
// It is immutable from the client's perspective except via explicit
// profile-update calls; the only derived field the client computes is the
// display name concatenation.
type User struct {
	ID        UserID    `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	FullName  string    `json:"fullName,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}

// DisplayName returns the backend-provided full name, falling back to
// first + last when the backend omitted it
func (u *User) DisplayName() string {
	if u.FullName != "" {
		return u.FullName
	}
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}
