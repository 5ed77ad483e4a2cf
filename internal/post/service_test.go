package post

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ldmoraes/minimal-blog-api/internal/apperr"
	"github.com/ldmoraes/minimal-blog-api/internal/models"
	"github.com/ldmoraes/minimal-blog-api/internal/store"
)

type testEnv struct {
	svc        *Service
	users      *store.UserStore
	categories *store.CategoryStore
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := store.OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, store.Migrate(db))

	users := store.NewUserStore(db)
	categories := store.NewCategoryStore(db)
	posts := store.NewPostStore(db)

	return &testEnv{
		svc:        NewService(posts, users, categories, zap.NewNop()),
		users:      users,
		categories: categories,
	}
}

func (e *testEnv) author(t *testing.T, email string) *models.User {
	t.Helper()
	u := &models.User{FirstName: "Ada", LastName: "Lovelace", Email: email}
	require.NoError(t, e.users.Create(context.Background(), u))
	return u
}

func (e *testEnv) category(t *testing.T, name string) *models.Category {
	t.Helper()
	c := &models.Category{Name: name}
	require.NoError(t, e.categories.Create(context.Background(), c))
	return c
}

func TestRegisterValidation(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		body     string
		authorID string
	}{
		{"missing title", "", "body", "some-author"},
		{"missing body", "title", "", "some-author"},
		{"missing author", "title", "body", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)

			_, err := env.svc.Register(context.Background(), tt.title, tt.body, false, tt.authorID, nil)
			require.ErrorIs(t, err, apperr.ErrValidation)
		})
	}
}

func TestRegisterUnknownAuthor(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.svc.Register(ctx, "title", "body", true, "no-such-user", nil)
	require.ErrorIs(t, err, apperr.ErrNotFound)

	posts, err := env.svc.All(ctx)
	require.NoError(t, err)
	assert.Empty(t, posts, "no row must be persisted when the author is unknown")
}

func TestRegisterDropsUnknownCategories(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	author := env.author(t, "ada@example.com")
	known := env.category(t, "go")

	created, err := env.svc.Register(ctx, "title", "body", true, author.ID,
		[]string{known.ID, "no-such-category"})
	require.NoError(t, err)
	require.Len(t, created.Categories, 1)
	assert.Equal(t, known.ID, created.Categories[0].ID)

	got, err := env.svc.ByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Len(t, got.Categories, 1)
	assert.Equal(t, known.ID, got.Categories[0].ID)
}

func TestRegisterEagerAttachment(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	author := env.author(t, "ada@example.com")

	created, err := env.svc.Register(ctx, "title", "body", false, author.ID, nil)
	require.NoError(t, err)
	require.NotNil(t, created.Author)
	assert.Equal(t, author.ID, created.Author.ID)
	assert.NotNil(t, created.Categories)

	got, err := env.svc.ByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.NotNil(t, got.Author)
	assert.Equal(t, author.Email, got.Author.Email)
	assert.NotNil(t, got.Categories)
}

func TestByAuthor(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	ada := env.author(t, "ada@example.com")
	grace := env.author(t, "grace@example.com")

	_, err := env.svc.Register(ctx, "ada one", "body", true, ada.ID, nil)
	require.NoError(t, err)
	_, err = env.svc.Register(ctx, "ada two", "body", true, ada.ID, nil)
	require.NoError(t, err)
	_, err = env.svc.Register(ctx, "grace one", "body", true, grace.ID, nil)
	require.NoError(t, err)

	posts, err := env.svc.ByAuthor(ctx, ada.ID)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	for _, p := range posts {
		assert.Equal(t, ada.ID, p.AuthorID)
	}
}

func TestSearchByTitle(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	author := env.author(t, "ada@example.com")
	titles := []string{"foo bar", "all about foolishness", "nothing here"}
	for _, title := range titles {
		_, err := env.svc.Register(ctx, title, "body", true, author.ID, nil)
		require.NoError(t, err)
	}

	posts, err := env.svc.SearchByTitle(ctx, "foo")
	require.NoError(t, err)
	require.Len(t, posts, 2)
	for _, p := range posts {
		assert.Contains(t, p.Title, "foo")
	}
}

func TestUpdateFields(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	author := env.author(t, "ada@example.com")
	created, err := env.svc.Register(ctx, "original", "body", true, author.ID, nil)
	require.NoError(t, err)

	// empty title/body leave the stored values; explicit false applies
	published := false
	updated, err := env.svc.Update(ctx, created.ID, "", "", &published)
	require.NoError(t, err)
	assert.Equal(t, "original", updated.Title)
	assert.False(t, updated.IsPublished)

	got, err := env.svc.ByID(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, got.IsPublished, "explicit false must persist")

	updated, err = env.svc.Update(ctx, created.ID, "new title", "new body", nil)
	require.NoError(t, err)
	assert.Equal(t, "new title", updated.Title)
	assert.Equal(t, "new body", updated.Body)
	assert.False(t, updated.IsPublished, "nil is_published leaves the stored value")
}

func TestUpdateMissing(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.svc.Update(context.Background(), "no-such-id", "title", "", nil)
	require.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestDeleteKeepsAuthorAndCategories(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	author := env.author(t, "ada@example.com")
	cat := env.category(t, "go")

	created, err := env.svc.Register(ctx, "title", "body", true, author.ID, []string{cat.ID})
	require.NoError(t, err)

	require.NoError(t, env.svc.Delete(ctx, created.ID))

	got, err := env.svc.ByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	stillUser, err := env.users.ByID(ctx, author.ID)
	require.NoError(t, err)
	assert.NotNil(t, stillUser, "deleting a post must not delete its author")

	stillCat, err := env.categories.ByID(ctx, cat.ID)
	require.NoError(t, err)
	assert.NotNil(t, stillCat, "deleting a post must not delete its categories")
}

func TestDeleteMissing(t *testing.T) {
	env := newTestEnv(t)

	err := env.svc.Delete(context.Background(), "no-such-id")
	require.ErrorIs(t, err, apperr.ErrNotFound)
}
