package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/filmz/filmz/internal/domain"
	"github.com/filmz/filmz/internal/mock"
	"github.com/filmz/filmz/internal/repository"
)

func newTestService(t *testing.T) (*Service, *mock.MockUserStore) {
	t.Helper()
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserStore(ctrl)
	return NewService(users, NewTokenIssuer("test-secret", time.Hour), 4, nil), users
}

func TestSignupThenResolveSession(t *testing.T) {
	svc, users := newTestService(t)
	ctx := context.Background()

	var stored domain.User
	users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, u domain.NewUser) (domain.User, error) {
			assert.Equal(t, "ada@example.com", u.Email)
			assert.True(t, VerifyPassword(u.PasswordHash, "password123"))
			stored = domain.User{ID: 11, Email: u.Email, PasswordHash: u.PasswordHash, FirstName: u.FirstName, LastName: u.LastName}
			return stored, nil
		})
	users.EXPECT().UserByID(gomock.Any(), int64(11)).DoAndReturn(
		func(context.Context, int64) (domain.User, error) { return stored, nil })

	user, token, err := svc.Signup(ctx, SignupInput{FirstName: " Ada ", LastName: "Lovelace", Email: "  Ada@Example.com ", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, int64(11), user.ID)
	assert.Equal(t, "Ada", user.FirstName)

	session, ok := svc.ResolveSession(ctx, token)
	require.True(t, ok)
	assert.Equal(t, int64(11), session.User.ID)
	assert.Equal(t, "ada@example.com", session.Claims.Email)
}

func TestSignupDuplicateEmail(t *testing.T) {
	svc, users := newTestService(t)
	users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(domain.User{}, repository.ErrEmailExists)

	_, _, err := svc.Signup(context.Background(), SignupInput{Email: "a@b.c", Password: "password123"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestSignupStoreError(t *testing.T) {
	svc, users := newTestService(t)
	users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(domain.User{}, errors.New("down"))

	_, _, err := svc.Signup(context.Background(), SignupInput{Email: "a@b.c", Password: "password123"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrEmailTaken)
}

func TestLogin(t *testing.T) {
	svc, users := newTestService(t)
	ctx := context.Background()
	hash, err := HashPassword("password123", 4)
	require.NoError(t, err)
	user := domain.User{ID: 3, Email: "a@b.c", PasswordHash: hash}

	users.EXPECT().UserByEmail(gomock.Any(), "a@b.c").Return(user, nil).Times(2)
	users.EXPECT().UserByEmail(gomock.Any(), "nobody@b.c").Return(domain.User{}, repository.ErrNotFound)
	users.EXPECT().UserByEmail(gomock.Any(), "down@b.c").Return(domain.User{}, errors.New("down"))

	got, token, err := svc.Login(ctx, "A@B.C", "password123")
	require.NoError(t, err)
	assert.Equal(t, int64(3), got.ID)
	assert.NotEmpty(t, token)

	_, token, err = svc.Login(ctx, "a@b.c", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Empty(t, token)

	_, _, err = svc.Login(ctx, "nobody@b.c", "password123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login(ctx, "down@b.c", "password123")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestResolveSessionFailures(t *testing.T) {
	svc, users := newTestService(t)
	ctx := context.Background()

	_, ok := svc.ResolveSession(ctx, "")
	assert.False(t, ok)

	_, ok = svc.ResolveSession(ctx, "garbage")
	assert.False(t, ok)

	token, err := svc.IssueToken(domain.User{ID: 99, Email: "gone@b.c"})
	require.NoError(t, err)
	users.EXPECT().UserByID(gomock.Any(), int64(99)).Return(domain.User{}, repository.ErrNotFound)
	_, ok = svc.ResolveSession(ctx, token)
	assert.False(t, ok, "deleted user has no session")
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "a@b.c", NormalizeEmail("  A@B.c\t"))
}
