// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/adnan275/zync/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// languages available for seeded native/learning pairs. Matches the options
// the client offers during onboarding.
var languages = []string{
	"english", "spanish", "french", "german", "mandarin", "japanese",
	"korean", "hindi", "russian", "portuguese", "arabic", "italian",
	"turkish", "dutch",
}

// Factory builds domain entities and persists them to the database.
// It is a thin helper used by seed presets and tests.
type Factory struct {
	db   *gorm.DB
	rng  *rand.Rand
	hash string
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
// All seeded users share one bcrypt hash so seeding stays fast.
func NewFactory(db *gorm.DB) (*Factory, error) {
	gofakeit.Seed(time.Now().UnixNano())

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		return nil, fmt.Errorf("hash seed password: %w", err)
	}

	return &Factory{
		db:   db,
		rng:  rand.New(rand.NewSource(time.Now().UnixNano())),
		hash: string(hash),
	}, nil
}

// CreateUser constructs and persists a sample `models.User`.
// Optional override functions may modify the generated user before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	native := languages[f.rng.Intn(len(languages))]
	learning := languages[f.rng.Intn(len(languages))]
	for learning == native {
		learning = languages[f.rng.Intn(len(languages))]
	}

	name := gofakeit.Name()
	user := &models.User{
		FullName:         name,
		Email:            fmt.Sprintf("%s%d@%s", slugify(name), gofakeit.Number(100, 999), gofakeit.DomainName()),
		Password:         f.hash,
		Bio:              gofakeit.Sentence(10),
		ProfilePic:       fmt.Sprintf("https://avatar.iran.liara.run/public/%d.png", f.rng.Intn(100)+1),
		NativeLanguage:   native,
		LearningLanguage: learning,
		Location:         fmt.Sprintf("%s, %s", gofakeit.City(), gofakeit.Country()),
		IsOnboarded:      true,
	}

	// realistic created_at spread over the last 90 days
	daysBack := f.rng.Intn(90)
	hoursBack := f.rng.Intn(24)
	user.CreatedAt = time.Now().Add(-time.Duration(daysBack)*24*time.Hour - time.Duration(hoursBack)*time.Hour)

	for _, override := range overrides {
		override(user)
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, fmt.Errorf("create seed user: %w", err)
	}
	return user, nil
}

// CreateFriendRequest persists a pending request between two users.
func (f *Factory) CreateFriendRequest(sender, recipient *models.User) (*models.FriendRequest, error) {
	request := &models.FriendRequest{
		SenderID:    sender.ID,
		RecipientID: recipient.ID,
		Status:      models.FriendRequestStatusPending,
	}
	if err := f.db.Create(request).Error; err != nil {
		return nil, fmt.Errorf("create seed friend request: %w", err)
	}
	return request, nil
}

// CreateFriendship persists an accepted request plus both direction rows of
// the friends relation, the same shape a real acceptance produces.
func (f *Factory) CreateFriendship(a, b *models.User) error {
	return f.db.Transaction(func(tx *gorm.DB) error {
		request := &models.FriendRequest{
			SenderID:    a.ID,
			RecipientID: b.ID,
			Status:      models.FriendRequestStatusAccepted,
		}
		if err := tx.Create(request).Error; err != nil {
			return err
		}
		links := []models.UserFriend{
			{UserID: a.ID, FriendID: b.ID},
			{UserID: b.ID, FriendID: a.ID},
		}
		return tx.Create(&links).Error
	})
}

func slugify(name string) string {
	s := strings.ToLower(name)
	s = strings.ReplaceAll(s, " ", ".")
	return strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '.' {
			return r
		}
		return -1
	}, s)
}
