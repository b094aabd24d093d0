package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travelbook/internal/database"
)

func TestUserRepository_DuplicateEmail(t *testing.T) {
	db, err := database.ConnectMemory()
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&User{}))

	repo := NewUserRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &User{Email: "ana@example.com", PasswordHash: "x", Role: RoleCustomer}))
	err = repo.Create(ctx, &User{Email: "ana@example.com", PasswordHash: "y", Role: RoleCustomer})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)

	u, err := repo.GetByEmail(ctx, " ANA@example.com ")
	require.NoError(t, err)
	assert.Equal(t, "x", u.PasswordHash)

	_, err = repo.GetByID(ctx, 999)
	assert.ErrorIs(t, err, ErrUserNotFound)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}
