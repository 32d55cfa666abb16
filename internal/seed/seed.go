// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"fmt"
	"log"

	"github.com/adnan275/zync/internal/models"

	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	// NumUsers is how many demo accounts to create.
	NumUsers int
	// FriendsPerUser is the target number of accepted friendships per user.
	FriendsPerUser int
	// PendingPerUser is the target number of open incoming requests per user.
	PendingPerUser int
	// ShouldClean wipes existing seed-relevant tables first.
	ShouldClean bool
}

// DefaultOptions returns a reasonable demo dataset size.
func DefaultOptions() Options {
	return Options{
		NumUsers:       40,
		FriendsPerUser: 4,
		PendingPerUser: 2,
	}
}

// Run seeds the database with demo users plus a mesh of accepted and pending
// friend requests between them.
func Run(db *gorm.DB, opts Options) error {
	if opts.NumUsers <= 0 {
		opts = DefaultOptions()
	}

	if opts.ShouldClean {
		if err := Clean(db); err != nil {
			return err
		}
	}

	factory, err := NewFactory(db)
	if err != nil {
		return err
	}

	users := make([]*models.User, 0, opts.NumUsers)
	for i := 0; i < opts.NumUsers; i++ {
		user, err := factory.CreateUser()
		if err != nil {
			return err
		}
		users = append(users, user)
	}
	log.Printf("seeded %d users", len(users))

	// Track which unordered pairs already hold a request so the pair-key
	// unique index is never violated.
	used := make(map[string]bool)
	pickPartner := func(self int) (int, bool) {
		for attempts := 0; attempts < 20; attempts++ {
			j := factory.rng.Intn(len(users))
			if j == self {
				continue
			}
			key := models.FriendPairKey(users[self].ID, users[j].ID)
			if used[key] {
				continue
			}
			used[key] = true
			return j, true
		}
		return 0, false
	}

	friendships := 0
	for i := range users {
		for n := 0; n < opts.FriendsPerUser; n++ {
			j, ok := pickPartner(i)
			if !ok {
				continue
			}
			if err := factory.CreateFriendship(users[i], users[j]); err != nil {
				return err
			}
			friendships++
		}
	}

	pending := 0
	for i := range users {
		for n := 0; n < opts.PendingPerUser; n++ {
			j, ok := pickPartner(i)
			if !ok {
				continue
			}
			if _, err := factory.CreateFriendRequest(users[j], users[i]); err != nil {
				return err
			}
			pending++
		}
	}

	log.Printf("seeded %d friendships and %d pending requests", friendships, pending)
	return nil
}

// Clean removes all rows from the tables the seeder writes to.
func Clean(db *gorm.DB) error {
	for _, table := range []string{"user_friends", "friend_requests", "users"} {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			return fmt.Errorf("clean %s: %w", table, err)
		}
	}
	return nil
}
