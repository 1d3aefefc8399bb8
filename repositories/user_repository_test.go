package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogapi/apperrors"
	"blogapi/models"
)

func TestCreateUserDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	require.NoError(t, repo.Create(&models.User{Email: "a@x.com", PwHash: "x"}))

	err := repo.Create(&models.User{Email: "a@x.com", PwHash: "y"})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestUserListFilters(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	require.NoError(t, db.Create(&models.User{Email: "alice@x.com", PwHash: "x", FirstName: "Alice", LastName: "Smith"}).Error)
	require.NoError(t, db.Create(&models.User{Email: "bob@x.com", PwHash: "x", FirstName: "Bob", LastName: "Smith"}).Error)
	require.NoError(t, db.Create(&models.User{Email: "carol@y.com", PwHash: "x", FirstName: "Carol", LastName: "Jones"}).Error)

	// Case-insensitive substring match
	users, err := repo.List(UserFilter{FirstName: "ALI"})
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "alice@x.com", users[0].Email)

	// AND-combined filters
	users, err = repo.List(UserFilter{Email: "x.com", LastName: "smith"})
	require.NoError(t, err)
	assert.Len(t, users, 2)

	users, err = repo.List(UserFilter{Email: "y.com", LastName: "smith"})
	require.NoError(t, err)
	assert.Empty(t, users)

	// No filters returns everyone
	users, err = repo.List(UserFilter{})
	require.NoError(t, err)
	assert.Len(t, users, 3)
}

func TestUserUpdateKeepsOwnEmail(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	user := seedUser(t, db, "a@x.com")
	seedUser(t, db, "b@x.com")

	// Saving without changing the email must not trip the uniqueness check
	user.FirstName = "Anna"
	require.NoError(t, repo.Update(user))

	// Taking someone else's email must
	user.Email = "b@x.com"
	err := repo.Update(user)
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestFollowerCount(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	follows := NewFollowRepository(db)

	a := seedUser(t, db, "a@x.com")
	b := seedUser(t, db, "b@x.com")
	c := seedUser(t, db, "c@x.com")

	require.NoError(t, follows.Follow(b.ID, a.ID))
	require.NoError(t, follows.Follow(c.ID, a.ID))

	count, err := repo.FollowerCount(a.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	count, err = repo.FollowerCount(b.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestDeleteUserCascades(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	follows := NewFollowRepository(db)

	a := seedUser(t, db, "a@x.com")
	b := seedUser(t, db, "b@x.com")

	a.Photo = "photo-key.jpg"
	require.NoError(t, db.Save(a).Error)

	post := seedPost(t, db, a, "Hello", "World")
	post.Image = "image-key.jpg"
	require.NoError(t, db.Save(post).Error)

	otherPost := seedPost(t, db, b, "Other", "Post")

	// A's comment on B's post goes too; B's comment on A's post goes with the post
	require.NoError(t, db.Create(&models.Comment{AuthorID: a.ID, PostID: otherPost.ID, Content: "hi"}).Error)
	require.NoError(t, db.Create(&models.Comment{AuthorID: b.ID, PostID: post.ID, Content: "yo"}).Error)

	require.NoError(t, follows.Follow(a.ID, b.ID))
	require.NoError(t, follows.Follow(b.ID, a.ID))
	require.NoError(t, db.Create(&models.AuthToken{Key: "k1", UserID: a.ID}).Error)

	orphaned, err := repo.Delete(a.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"photo-key.jpg", "image-key.jpg"}, orphaned)

	_, err = repo.FindByID(a.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	var count int64
	db.Model(&models.Post{}).Count(&count)
	assert.Equal(t, int64(1), count) // only B's post survives

	db.Model(&models.Comment{}).Count(&count)
	assert.Equal(t, int64(0), count)

	db.Model(&models.Follow{}).Count(&count)
	assert.Equal(t, int64(0), count)

	db.Model(&models.AuthToken{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestDeleteMissingUser(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	_, err := repo.Delete(42)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
