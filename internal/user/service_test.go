package user

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

func newTestService(t *testing.T) (*Service, *store.PostStore) {
	t.Helper()

	db, err := store.OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, store.Migrate(db))

	return NewService(store.NewUserStore(db), zap.NewNop()), store.NewPostStore(db)
}

func TestRegisterAndGetByID(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Register(ctx, "Ada", "Lovelace", "ada@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.False(t, created.CreatedAt.IsZero())

	got, err := svc.ByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Ada", got.FirstName)
	assert.Equal(t, "Lovelace", got.LastName)
	assert.Equal(t, "ada@example.com", got.Email)
	assert.Equal(t, int64(0), got.PostsCount)
}

func TestRegisterValidation(t *testing.T) {
	tests := []struct {
		name      string
		firstName string
		lastName  string
		email     string
	}{
		{"missing first name", "", "Lovelace", "ada@example.com"},
		{"missing last name", "Ada", "", "ada@example.com"},
		{"missing email", "Ada", "Lovelace", ""},
		{"email without at sign", "Ada", "Lovelace", "ada.example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestService(t)
			ctx := context.Background()

			_, err := svc.Register(ctx, tt.firstName, tt.lastName, tt.email)
			require.ErrorIs(t, err, apperr.ErrValidation)

			users, err := svc.All(ctx)
			require.NoError(t, err)
			assert.Empty(t, users, "no row must be persisted on validation failure")
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "Ada", "Lovelace", "ada@example.com")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "Augusta", "King", "ada@example.com")
	require.ErrorIs(t, err, apperr.ErrConflict)

	users, err := svc.All(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestAllOrderedWithPostsCount(t *testing.T) {
	svc, posts := newTestService(t)
	ctx := context.Background()

	// deterministic ids, inserted out of order to exercise the ordering
	first := &models.User{
		ID:        "11111111-0000-0000-0000-000000000000",
		FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com",
	}
	second := &models.User{
		ID:        "22222222-0000-0000-0000-000000000000",
		FirstName: "Grace", LastName: "Hopper", Email: "grace@example.com",
	}
	require.NoError(t, svc.users.Create(ctx, second))
	require.NoError(t, svc.users.Create(ctx, first))

	for i := 0; i < 2; i++ {
		err := posts.Create(ctx, &models.Post{Title: "t", Body: "b", AuthorID: first.ID})
		require.NoError(t, err)
	}

	all, err := svc.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, first.ID, all[0].ID)
	assert.Equal(t, second.ID, all[1].ID)
	assert.Equal(t, int64(2), all[0].PostsCount)
	assert.Equal(t, int64(0), all[1].PostsCount)
}

func TestFindByEmail(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Register(ctx, "Ada", "Lovelace", "ada@example.com")
	require.NoError(t, err)

	got, err := svc.ByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, created.ID, got.ID)

	missing, err := svc.ByEmail(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestDelete(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Register(ctx, "Ada", "Lovelace", "ada@example.com")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))

	got, err := svc.ByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestDeleteMissing(t *testing.T) {
	svc, _ := newTestService(t)

	err := svc.Delete(context.Background(), "no-such-id")
	require.ErrorIs(t, err, apperr.ErrNotFound)
}
