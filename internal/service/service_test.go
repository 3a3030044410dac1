package service

import (
	"context"
	"strings"
	"testing"

	"glimpse/internal/models"
	"glimpse/internal/repository"
	"glimpse/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func strPtr(s string) *string { return &s }

func seedUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := &models.User{Username: username, HashedPassword: "hashed"}
	require.NoError(t, db.Create(user).Error)
	return user
}

func TestCreatePostValidation(t *testing.T) {
	svc := NewPostService(repository.NewPostRepository(testutil.NewDB(t)))

	tests := []struct {
		name        string
		textContent string
		wantMessage string
	}{
		{"Empty", "", "textContent is required"},
		{"Too Long", strings.Repeat("a", maxTextContentLen+1), "textContent too long (max 5000 characters)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreatePost(context.Background(), CreatePostInput{
				UserID:      1,
				Username:    "ana",
				TextContent: tt.textContent,
			})
			var appErr *models.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
			assert.Equal(t, tt.wantMessage, appErr.Message)
		})
	}
}

func TestListPostsNewestFirst(t *testing.T) {
	db := testutil.NewDB(t)
	user := seedUser(t, db, "ana")
	svc := NewPostService(repository.NewPostRepository(db))

	for _, text := range []string{"first", "second", "third"} {
		_, err := svc.CreatePost(context.Background(), CreatePostInput{
			UserID:      user.UserID,
			Username:    user.Username,
			TextContent: text,
		})
		require.NoError(t, err)
	}

	posts, err := svc.ListPosts(context.Background(), user.UserID)
	require.NoError(t, err)
	require.Len(t, posts, 3)
	assert.Equal(t, "third", posts[0].TextContent)
	assert.Equal(t, "second", posts[1].TextContent)
	assert.Equal(t, "first", posts[2].TextContent)
	assert.Greater(t, posts[0].PostID, posts[1].PostID)
}

func TestListPostsScopedToUser(t *testing.T) {
	db := testutil.NewDB(t)
	ana := seedUser(t, db, "ana")
	bob := seedUser(t, db, "bob")
	svc := NewPostService(repository.NewPostRepository(db))

	_, err := svc.CreatePost(context.Background(), CreatePostInput{
		UserID: ana.UserID, Username: ana.Username, TextContent: "ana's post",
	})
	require.NoError(t, err)
	_, err = svc.CreatePost(context.Background(), CreatePostInput{
		UserID: bob.UserID, Username: bob.Username, TextContent: "bob's post",
	})
	require.NoError(t, err)

	posts, err := svc.ListPosts(context.Background(), ana.UserID)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "ana's post", posts[0].TextContent)
}

func TestDeletePostOwnership(t *testing.T) {
	db := testutil.NewDB(t)
	ana := seedUser(t, db, "ana")
	bob := seedUser(t, db, "bob")
	svc := NewPostService(repository.NewPostRepository(db))

	post, err := svc.CreatePost(context.Background(), CreatePostInput{
		UserID: ana.UserID, Username: ana.Username, TextContent: "keep out",
	})
	require.NoError(t, err)

	// Someone else deleting the post is a silent no-op.
	require.NoError(t, svc.DeletePost(context.Background(), bob.UserID, post.PostID))

	var count int64
	require.NoError(t, db.Model(&models.Post{}).Where("post_id = ?", post.PostID).Count(&count).Error)
	assert.Equal(t, int64(1), count, "post should survive a non-owner delete")

	// The owner deleting it actually removes it.
	require.NoError(t, svc.DeletePost(context.Background(), ana.UserID, post.PostID))
	require.NoError(t, db.Model(&models.Post{}).Where("post_id = ?", post.PostID).Count(&count).Error)
	assert.Equal(t, int64(0), count)

	// Deleting an already-deleted post is still fine.
	require.NoError(t, svc.DeletePost(context.Background(), ana.UserID, post.PostID))
}

func TestPostSnapshotStoredAsGiven(t *testing.T) {
	db := testutil.NewDB(t)
	ana := seedUser(t, db, "ana")
	svc := NewPostService(repository.NewPostRepository(db))

	post, err := svc.CreatePost(context.Background(), CreatePostInput{
		UserID:      ana.UserID,
		Username:    ana.Username,
		DisplayName: strPtr("Ana Banana"),
		Avatar:      strPtr("/images/old-avatar.png"),
		TextContent: "hello",
	})
	require.NoError(t, err)

	// Changing the profile afterwards leaves the post's snapshot untouched.
	require.NoError(t, db.Model(&models.User{}).
		Where("user_id = ?", ana.UserID).
		Update("display_name", "Renamed").Error)

	var stored models.Post
	require.NoError(t, db.First(&stored, post.PostID).Error)
	require.NotNil(t, stored.DisplayName)
	assert.Equal(t, "Ana Banana", *stored.DisplayName)
	require.NotNil(t, stored.Avatar)
	assert.Equal(t, "/images/old-avatar.png", *stored.Avatar)
}

func TestUpdateProfile(t *testing.T) {
	db := testutil.NewDB(t)
	ana := seedUser(t, db, "ana")
	svc := NewUserService(repository.NewUserRepository(db))

	t.Run("Sets Fields", func(t *testing.T) {
		user, err := svc.UpdateProfile(context.Background(), UpdateProfileInput{
			UserID:      ana.UserID,
			DisplayName: strPtr("Ana"),
			Bio:         strPtr("hello world"),
			Image:       strPtr("/images/avatar.png"),
		})
		require.NoError(t, err)
		require.NotNil(t, user.DisplayName)
		assert.Equal(t, "Ana", *user.DisplayName)
		require.NotNil(t, user.Bio)
		assert.Equal(t, "hello world", *user.Bio)
		require.NotNil(t, user.Image)
		assert.Equal(t, "/images/avatar.png", *user.Image)
	})

	t.Run("Nil Image Keeps Existing Avatar", func(t *testing.T) {
		user, err := svc.UpdateProfile(context.Background(), UpdateProfileInput{
			UserID:      ana.UserID,
			DisplayName: strPtr("Ana Again"),
			Bio:         nil,
		})
		require.NoError(t, err)
		require.NotNil(t, user.Image)
		assert.Equal(t, "/images/avatar.png", *user.Image)
		assert.Nil(t, user.Bio, "absent bio clears the stored value")
	})

	t.Run("Validation Limits", func(t *testing.T) {
		_, err := svc.UpdateProfile(context.Background(), UpdateProfileInput{
			UserID:      ana.UserID,
			DisplayName: strPtr(strings.Repeat("x", maxDisplayNameLen+1)),
		})
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "VALIDATION_ERROR", appErr.Code)

		_, err = svc.UpdateProfile(context.Background(), UpdateProfileInput{
			UserID: ana.UserID,
			Bio:    strPtr(strings.Repeat("x", maxBioLen+1)),
		})
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	})

	t.Run("Vanished Row", func(t *testing.T) {
		_, err := svc.UpdateProfile(context.Background(), UpdateProfileInput{
			UserID:      9999,
			DisplayName: strPtr("ghost"),
		})
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "NOT_FOUND", appErr.Code)
	})
}

func TestDuplicateUsernameIsConflict(t *testing.T) {
	db := testutil.NewDB(t)
	repo := repository.NewUserRepository(db)

	require.NoError(t, repo.Create(context.Background(), &models.User{
		Username: "ana", HashedPassword: "h1",
	}))

	err := repo.Create(context.Background(), &models.User{
		Username: "ana", HashedPassword: "h2",
	})
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "CONFLICT", appErr.Code)
	assert.Equal(t, "username already taken", appErr.Message)
}
