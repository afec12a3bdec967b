package webhook

import (
	"encoding/json"
	"strings"

	"github.com/planovo/planovo-api/internal/domain"
)

// Clerk event types handled by the receiver.
const (
	EventUserCreated = "user.created"
	EventUserUpdated = "user.updated"
	EventUserDeleted = "user.deleted"
)

// Event is the Clerk webhook envelope.
type Event struct {
	Type   string          `json:"type"`
	Object string          `json:"object"`
	Data   json.RawMessage `json:"data"`
}

// EmailAddress is one entry of a Clerk user's email_addresses.
type EmailAddress struct {
	ID           string `json:"id"`
	EmailAddress string `json:"email_address"`
}

// UserData is the data payload of user.* events. Deleted events carry only
// the ID.
type UserData struct {
	ID                    string         `json:"id"`
	EmailAddresses        []EmailAddress `json:"email_addresses"`
	PrimaryEmailAddressID string         `json:"primary_email_address_id"`
	FirstName             *string        `json:"first_name"`
	LastName              *string        `json:"last_name"`
	ImageURL              string         `json:"image_url"`
	Deleted               bool           `json:"deleted"`
}

// PrimaryEmail returns the primary address, or the first one when no
// primary is marked.
func (d UserData) PrimaryEmail() string {
	for _, e := range d.EmailAddresses {
		if e.ID == d.PrimaryEmailAddressID {
			return e.EmailAddress
		}
	}
	if len(d.EmailAddresses) > 0 {
		return d.EmailAddresses[0].EmailAddress
	}
	return ""
}

// ToUser maps the payload to a domain user with a fresh internal ID; the
// store keeps the existing ID on conflict.
func (d UserData) ToUser() (*domain.User, error) {
	user, err := domain.NewUser(d.ID, d.PrimaryEmail())
	if err != nil {
		return nil, err
	}
	user.FirstName = strings.TrimSpace(deref(d.FirstName))
	user.LastName = strings.TrimSpace(deref(d.LastName))
	user.ImageURL = d.ImageURL
	return user, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
