package entity

import (
	"time"

	"github.com/google/uuid"
)

type FriendStatus string

const (
	FriendPending  FriendStatus = "pending"
	FriendAccepted FriendStatus = "accepted"
	FriendDeclined FriendStatus = "declined"
	// Present in the schema, no operation sets it yet.
	FriendBlocked FriendStatus = "blocked"
)

type FriendConnection struct {
	ID          uuid.UUID    `json:"id"`
	RequesterID uuid.UUID    `json:"requester_id"`
	AddresseeID uuid.UUID    `json:"addressee_id"`
	Status      FriendStatus `json:"status"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
	Requester   *UserProfile `json:"-"`
	Addressee   *UserProfile `json:"-"`
}

// Other returns the profile on the opposite side of the connection from uid.
func (fc *FriendConnection) Other(uid uuid.UUID) *UserProfile {
	if fc.RequesterID == uid {
		return fc.Addressee
	}
	return fc.Requester
}

type Friend struct {
	PublicUser
	ConnectionID uuid.UUID `json:"connection_id"`
	Since        time.Time `json:"since"`
}

type FriendRequest struct {
	ConnectionID uuid.UUID   `json:"connection_id"`
	Requester    *PublicUser `json:"requester"`
	CreatedAt    time.Time   `json:"created_at"`
}

type InvitationStatus string

const (
	InvitationPending  InvitationStatus = "pending"
	InvitationAccepted InvitationStatus = "accepted"
	InvitationExpired  InvitationStatus = "expired"
)

type FriendInvitation struct {
	ID             uuid.UUID        `json:"id"`
	InviterID      uuid.UUID        `json:"inviter_id"`
	Email          string           `json:"email"`
	InvitationCode string           `json:"invitation_code"`
	Message        string           `json:"message,omitempty"`
	Status         InvitationStatus `json:"status"`
	ExpiresAt      time.Time        `json:"expires_at"`
	CreatedAt      time.Time        `json:"created_at"`
}

// Expired reports whether the invitation can no longer be accepted at now.
func (inv *FriendInvitation) Expired(now time.Time) bool {
	return inv.ExpiresAt.Before(now)
}
