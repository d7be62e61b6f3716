package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type memUsers struct {
	byEmail map[string]User
}

func (m *memUsers) Create(_ context.Context, u User) error {
	if _, ok := m.byEmail[u.Email]; ok {
		return ErrUserAlreadyExists
	}
	m.byEmail[u.Email] = u
	return nil
}

func (m *memUsers) GetByEmail(_ context.Context, email string) (User, error) {
	u, ok := m.byEmail[email]
	if !ok {
		return User{}, ErrNotFound
	}
	return u, nil
}

type stubTokens struct{}

func (stubTokens) Generate(_ context.Context, u User) (string, error) { return "token-" + u.Email, nil }

func newTestService() (*authService, *memUsers) {
	repo := &memUsers{byEmail: map[string]User{}}
	return &authService{repo: repo, tokens: stubTokens{}, cost: bcrypt.MinCost}, repo
}

func TestCreateUserAndLogin(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	u, err := svc.CreateUser(ctx, "  HR@Example.com ", "s3cret-pass", RoleHRManager)
	require.NoError(t, err)
	assert.Equal(t, "hr@example.com", u.Email)
	assert.Equal(t, UserActive, u.Status)
	assert.NotEqual(t, "s3cret-pass", u.PasswordHash)

	res, err := svc.Login(ctx, "hr@example.com", "s3cret-pass")
	require.NoError(t, err)
	assert.Equal(t, "token-hr@example.com", res.Token)
	assert.Equal(t, RoleHRManager, res.User.Role)
}

func TestCreateUser_Duplicate(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, "a@b.c", "password1", RoleAdmin)
	require.NoError(t, err)
	_, err = svc.CreateUser(ctx, "A@B.C", "password2", RoleAdmin)
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestCreateUser_Invalid(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, "", "password1", RoleAdmin)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.CreateUser(ctx, "a@b.c", "short", RoleAdmin)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.CreateUser(ctx, "a@b.c", "password1", Role("CEO"))
	assert.Error(t, err)
}

func TestLogin_Failures(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, "r@x.io", "password1", RoleRecruiter)
	require.NoError(t, err)

	_, err = svc.Login(ctx, "r@x.io", "wrong-pass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, "nobody@x.io", "password1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	u := repo.byEmail["r@x.io"]
	u.Status = UserLocked
	repo.byEmail["r@x.io"] = u
	_, err = svc.Login(ctx, "r@x.io", "password1")
	assert.ErrorIs(t, err, ErrInactiveUser)
}

func TestActorIsAdmin(t *testing.T) {
	assert.True(t, Actor{Role: RoleAdmin}.IsAdmin())
	assert.False(t, Actor{Role: RoleRecruiter}.IsAdmin())
}
