package repositories

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogapi/apperrors"
	"blogapi/models"
)

func TestPostValidation(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostRepository(db)

	a := seedUser(t, db, "a@x.com")

	err := repo.Create(&models.Post{AuthorID: a.ID, Title: "", Content: "x"})
	assert.True(t, apperrors.IsValidation(err))

	err = repo.Create(&models.Post{AuthorID: a.ID, Title: "x", Content: ""})
	assert.True(t, apperrors.IsValidation(err))

	long := make([]byte, 256)
	for i := range long {
		long[i] = 'a'
	}
	err = repo.Create(&models.Post{AuthorID: a.ID, Title: string(long), Content: "x"})
	assert.True(t, apperrors.IsValidation(err))
}

func TestPostDetailCarriesComments(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostRepository(db)

	a := seedUser(t, db, "a@x.com")
	b := seedUser(t, db, "b@x.com")

	post := seedPost(t, db, a, "Hello", "World")
	other := seedPost(t, db, a, "Other", "Post")

	require.NoError(t, db.Create(&models.Comment{AuthorID: b.ID, PostID: post.ID, Content: "first"}).Error)
	require.NoError(t, db.Create(&models.Comment{AuthorID: a.ID, PostID: post.ID, Content: "second"}).Error)
	require.NoError(t, db.Create(&models.Comment{AuthorID: b.ID, PostID: other.ID, Content: "elsewhere"}).Error)

	detail, err := repo.FindDetail(post.ID)
	require.NoError(t, err)
	assert.Equal(t, a.Email, detail.Author.Email)

	// Exactly the comments whose parent is this post, in insertion order
	require.Len(t, detail.Comments, 2)
	assert.Equal(t, "first", detail.Comments[0].Content)
	assert.Equal(t, "second", detail.Comments[1].Content)
	assert.Equal(t, b.Email, detail.Comments[0].Author.Email)
}

func TestPostDeleteCascadesComments(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostRepository(db)

	a := seedUser(t, db, "a@x.com")
	post := seedPost(t, db, a, "Hello", "World")
	other := seedPost(t, db, a, "Other", "Post")

	require.NoError(t, db.Create(&models.Comment{AuthorID: a.ID, PostID: post.ID, Content: "one"}).Error)
	require.NoError(t, db.Create(&models.Comment{AuthorID: a.ID, PostID: other.ID, Content: "two"}).Error)

	require.NoError(t, repo.Delete(post.ID))

	_, err := repo.FindByID(post.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	var comments []models.Comment
	require.NoError(t, db.Find(&comments).Error)
	require.Len(t, comments, 1)
	assert.Equal(t, other.ID, comments[0].PostID)
}

func TestPostListFilters(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostRepository(db)

	a := seedUser(t, db, "a@x.com")
	seedPost(t, db, a, "Foo adventures", "contains Bar inside")
	seedPost(t, db, a, "foo only", "nothing else")
	seedPost(t, db, a, "unrelated", "bar only")

	// Case-insensitive, AND-combined
	posts, err := repo.List(PostFilter{Title: "FOO", Content: "BAR"})
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "Foo adventures", posts[0].Title)

	posts, err = repo.List(PostFilter{Title: "foo"})
	require.NoError(t, err)
	assert.Len(t, posts, 2)

	posts, err = repo.List(PostFilter{})
	require.NoError(t, err)
	assert.Len(t, posts, 3)
}

func TestFeedMembershipAndOrder(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostRepository(db)
	follows := NewFollowRepository(db)

	a := seedUser(t, db, "a@x.com")
	b := seedUser(t, db, "b@x.com")
	c := seedUser(t, db, "c@x.com")

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	mkPost := func(author *models.User, title string, offset time.Duration) {
		post := models.Post{AuthorID: author.ID, Title: title, Content: "c", CreatedAt: base.Add(offset)}
		require.NoError(t, db.Create(&post).Error)
	}

	mkPost(a, "a-old", 0)
	mkPost(b, "b-mid", time.Hour)
	mkPost(a, "a-new", 2*time.Hour)
	mkPost(c, "c-hidden", 3*time.Hour)

	require.NoError(t, follows.Follow(a.ID, b.ID))

	// A follows B only: feed is A's own posts plus B's, newest first
	feed, err := repo.Feed(a.ID, 100, 0)
	require.NoError(t, err)
	require.Len(t, feed, 3)
	assert.Equal(t, "a-new", feed[0].Title)
	assert.Equal(t, "b-mid", feed[1].Title)
	assert.Equal(t, "a-old", feed[2].Title)

	// B follows nobody: feed is B's own posts only
	feed, err = repo.Feed(b.ID, 100, 0)
	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.Equal(t, "b-mid", feed[0].Title)

	// Pagination window
	feed, err = repo.Feed(a.ID, 1, 1)
	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.Equal(t, "b-mid", feed[0].Title)
}
