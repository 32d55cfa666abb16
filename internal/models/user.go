// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// User represents an account in the Zync language-exchange application.
type User struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	FullName         string    `gorm:"size:120;not null" json:"fullName"`
	Email            string    `gorm:"size:255;unique;not null" json:"email"`
	Password         string    `gorm:"not null" json:"-"`
	Bio              string    `gorm:"type:text" json:"bio"`
	ProfilePic       string    `gorm:"size:512" json:"profilePic"`
	NativeLanguage   string    `gorm:"size:40" json:"nativeLanguage"`
	LearningLanguage string    `gorm:"size:40" json:"learningLanguage"`
	Location         string    `gorm:"size:120" json:"location"`
	IsOnboarded      bool      `gorm:"not null;default:false" json:"isOnboarded"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// UserFriend is one direction of the symmetric friends relation. Acceptance
// of a friend request writes both directions in the same transaction, so a
// user's friends can always be read from a single equality predicate.
type UserFriend struct {
	UserID    uint      `gorm:"primaryKey;autoIncrement:false" json:"user_id"`
	FriendID  uint      `gorm:"primaryKey;autoIncrement:false" json:"friend_id"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for GORM
func (UserFriend) TableName() string {
	return "user_friends"
}

// UserSummary is the public projection of a user returned by friend lists,
// recommendations, and profile views.
type UserSummary struct {
	ID               uint   `json:"id"`
	FullName         string `json:"fullName"`
	ProfilePic       string `json:"profilePic"`
	Bio              string `json:"bio"`
	NativeLanguage   string `json:"nativeLanguage"`
	LearningLanguage string `json:"learningLanguage"`
	Location         string `json:"location"`
}

// Summary returns the public projection of the user.
func (u *User) Summary() UserSummary {
	return UserSummary{
		ID:               u.ID,
		FullName:         u.FullName,
		ProfilePic:       u.ProfilePic,
		Bio:              u.Bio,
		NativeLanguage:   u.NativeLanguage,
		LearningLanguage: u.LearningLanguage,
		Location:         u.Location,
	}
}

// Summaries converts a slice of users into their public projections.
func Summaries(users []User) []UserSummary {
	out := make([]UserSummary, 0, len(users))
	for i := range users {
		out = append(out, users[i].Summary())
	}
	return out
}
