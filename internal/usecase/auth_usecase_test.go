package usecase

import (
	"context"
	"testing"

	"vetify/internal/delivery/dto"
	"vetify/internal/domain/entity"
	"vetify/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAuthUsecase(db *gorm.DB) AuthUsecase {
	return NewAuthUsecase(db, testLogger(), repository.NewUserRepository())
}

func TestAuthUsecase_LoginRoundTrip(t *testing.T) {
	db := newTestDB(t)
	u := newAuthUsecase(db)
	ctx := context.Background()

	created, err := u.CreateUser(ctx, "admin", "admin123", entity.RoleAdmin)
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	// The stored password is a hash, never the plaintext.
	assert.NotEqual(t, "admin123", created.Password)

	user, err := u.Login(ctx, &dto.LoginRequest{Username: "admin", Password: "admin123"})
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)
	assert.Equal(t, entity.RoleAdmin, user.Role)
}

func TestAuthUsecase_LoginRejectsBadCredentials(t *testing.T) {
	db := newTestDB(t)
	u := newAuthUsecase(db)
	ctx := context.Background()

	_, err := u.CreateUser(ctx, "admin", "admin123", entity.RoleAdmin)
	require.NoError(t, err)

	// Wrong password and unknown username fail identically.
	_, err = u.Login(ctx, &dto.LoginRequest{Username: "admin", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = u.Login(ctx, &dto.LoginRequest{Username: "nobody", Password: "admin123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthUsecase_CreateUserDefaultsAndDuplicates(t *testing.T) {
	db := newTestDB(t)
	u := newAuthUsecase(db)
	ctx := context.Background()

	user, err := u.CreateUser(ctx, "marta", "secreta", "")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleSecretaria, user.Role)

	_, err = u.CreateUser(ctx, "marta", "otra", entity.RoleAdmin)
	assert.ErrorIs(t, err, ErrUsernameTaken)
}
