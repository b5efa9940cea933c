package service

import (
	"testing"

	"event-app/internal/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterGeneratesSlug(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db)

	u := mustRegister(t, svc, "Ann", "Lee", "ann@example.com")
	assert.Equal(t, "ann-lee", u.Slug)
	assert.NotEmpty(t, u.PasswordHash)
	assert.NotEqual(t, "password123", u.PasswordHash)
}

func TestRegisterSlugCollision(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db)

	first := mustRegister(t, svc, "Ann", "Lee", "ann1@example.com")
	second := mustRegister(t, svc, "Ann", "Lee", "ann2@example.com")
	third := mustRegister(t, svc, "Ann", "Lee", "ann3@example.com")

	assert.Equal(t, "ann-lee", first.Slug)
	assert.Equal(t, "ann-lee-1", second.Slug)
	assert.Equal(t, "ann-lee-2", third.Slug)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db)

	mustRegister(t, svc, "Ann", "Lee", "ann@example.com")
	_, err := svc.Register("Bob", "King", "ann@example.com", "password123")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrConflict)
}

func TestRegisterMissingFields(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db)

	_, err := svc.Register("", "Lee", "ann@example.com", "password123")
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)

	_, err = svc.Register("Ann", "Lee", "ann@example.com", "")
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)
}

func TestLogin(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db)
	mustRegister(t, svc, "Ann", "Lee", "ann@example.com")

	u, token, err := svc.Login("ann@example.com", "password123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "ann@example.com", u.Email)

	// token 可被校验，subject为用户ID
	claims, err := newTestJWT().ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "1", claims.Subject)
	assert.Equal(t, "ann-lee", claims.Data["slug"])
}

func TestLoginWrongPassword(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db)
	mustRegister(t, svc, "Ann", "Lee", "ann@example.com")

	_, _, err := svc.Login("ann@example.com", "wrong")
	assert.ErrorIs(t, err, apperr.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db)

	_, _, err := svc.Login("nobody@example.com", "password123")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestUpdateKeepsSlug(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db)
	u := mustRegister(t, svc, "Ann", "Lee", "ann@example.com")

	// 改名不重新生成slug（稳定URL）
	updated, err := svc.Update(u.ID, "Anna", "Chang", "anna@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Anna", updated.FirstName)
	assert.Equal(t, "Chang", updated.LastName)
	assert.Equal(t, "ann-lee", updated.Slug)
}

func TestGetBySlug(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db)
	mustRegister(t, svc, "Ann", "Lee", "ann@example.com")

	u, err := svc.GetBySlug("ann-lee")
	require.NoError(t, err)
	assert.Equal(t, "ann@example.com", u.Email)

	_, err = svc.GetBySlug("no-such-slug")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestDeleteUser(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db)
	u := mustRegister(t, svc, "Ann", "Lee", "ann@example.com")

	require.NoError(t, svc.Delete(u.ID))
	err := svc.Delete(u.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}
