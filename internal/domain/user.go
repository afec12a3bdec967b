package domain

import (
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is the local mirror of an account managed by the Clerk identity
// provider. Rows are created and updated from webhook events only.
type User struct {
	ID        uuid.UUID `json:"id"`
	ClerkID   string    `json:"clerk_id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name,omitempty"`
	LastName  string    `json:"last_name,omitempty"`
	ImageURL  string    `json:"image_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewUser creates a User for the given Clerk ID with fresh ID and timestamps.
func NewUser(clerkID, email string) (*User, error) {
	now := time.Now().UTC()
	user := &User{
		ID:        uuid.New(),
		ClerkID:   strings.TrimSpace(clerkID),
		Email:     strings.TrimSpace(email),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
// The email may be empty: Clerk accounts can sign in by phone only.
func (u *User) Validate() error {
	if u.ClerkID == "" {
		return ErrEmptyClerkID
	}

	if u.Email != "" {
		if _, err := mail.ParseAddress(u.Email); err != nil {
			return ErrInvalidEmail
		}
	}

	return nil
}
