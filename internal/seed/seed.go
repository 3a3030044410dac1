// Package seed provides helpers to create development and test data.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"glimpse/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DefaultPassword is the password every seeded user can sign in with.
const DefaultPassword = "password123"

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db *gorm.DB
	r  *rand.Rand
}

// NewFactory creates a new Factory bound to the provided gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		db: db,
		r:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// CreateUser persists a fake user. Roughly half get a display name and bio,
// mirroring real sign-up behaviour where profile fields are optional.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(DefaultPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:       gofakeit.Username(),
		HashedPassword: string(hash),
	}
	if f.r.Intn(2) == 0 {
		name := gofakeit.Name()
		bio := gofakeit.Sentence(8)
		user.DisplayName = &name
		user.Bio = &bio
	}

	for _, o := range overrides {
		o(user)
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreatePost persists a fake post authored by user, taking the author
// snapshot from the user's current profile the way the API does.
func (f *Factory) CreatePost(user *models.User, overrides ...func(*models.Post)) (*models.Post, error) {
	post := &models.Post{
		UserID:      user.UserID,
		Username:    user.Username,
		DisplayName: user.DisplayName,
		Avatar:      user.Image,
		TextContent: gofakeit.Paragraph(1, 2, 8, " "),
	}
	if f.r.Intn(3) == 0 {
		image := fmt.Sprintf("/images/%s.jpg", gofakeit.UUID())
		post.Image = &image
	}

	for _, o := range overrides {
		o(post)
	}

	if err := f.db.Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// Seed populates the database with the given number of users, each with up
// to maxPostsPerUser posts.
func Seed(db *gorm.DB, users, maxPostsPerUser int) error {
	f := NewFactory(db)
	for i := 0; i < users; i++ {
		user, err := f.CreateUser()
		if err != nil {
			return fmt.Errorf("seeding user %d: %w", i, err)
		}
		for j := 0; j < f.r.Intn(maxPostsPerUser+1); j++ {
			if _, err := f.CreatePost(user); err != nil {
				return fmt.Errorf("seeding post for user %d: %w", user.UserID, err)
			}
		}
	}
	return nil
}
