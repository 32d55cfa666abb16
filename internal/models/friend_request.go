// Package models contains data structures for the application's domain models.
package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// FriendRequestStatus represents the lifecycle state of a friend request.
type FriendRequestStatus string

const (
	// FriendRequestStatusPending indicates a request awaiting the recipient.
	FriendRequestStatusPending FriendRequestStatus = "pending"
	// FriendRequestStatusAccepted indicates a confirmed connection. Accepted
	// requests are retained to power "new connections" notifications.
	FriendRequestStatusAccepted FriendRequestStatus = "accepted"
)

// FriendRequest represents a friend request between two users.
//
// PairKey is the canonical "min:max" encoding of the two user ids. Its unique
// index means at most one request row can ever exist per unordered pair, in
// either direction, which serializes concurrent sends at the database level.
type FriendRequest struct {
	ID          uint                `gorm:"primaryKey" json:"id"`
	SenderID    uint                `gorm:"not null;index" json:"sender_id"`
	RecipientID uint                `gorm:"not null;index" json:"recipient_id"`
	PairKey     string              `gorm:"size:64;not null;uniqueIndex" json:"-"`
	Status      FriendRequestStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`

	// Relationships
	Sender    *User `gorm:"foreignKey:SenderID" json:"sender,omitempty"`
	Recipient *User `gorm:"foreignKey:RecipientID" json:"recipient,omitempty"`
}

// TableName specifies the table name for GORM
func (FriendRequest) TableName() string {
	return "friend_requests"
}

// BeforeCreate derives the canonical pair key. Sender/recipient direction is
// preserved; only the uniqueness key is order-independent.
func (r *FriendRequest) BeforeCreate(_ *gorm.DB) error {
	r.PairKey = FriendPairKey(r.SenderID, r.RecipientID)
	return nil
}

// FriendPairKey returns the canonical unordered-pair key for two user ids.
func FriendPairKey(a, b uint) string {
	if a > b {
		a, b = b, a
	}
	return fmt.Sprintf("%d:%d", a, b)
}
