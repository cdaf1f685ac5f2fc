package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fieldbook/internal/apperr"
	"fieldbook/internal/models"
	"fieldbook/internal/utils"
)

type stubUserRepo struct {
	byEmail map[string]*models.User
	hashes  map[string]string // email -> password hash
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byEmail: make(map[string]*models.User), hashes: make(map[string]string)}
}

func (r *stubUserRepo) Create(_ context.Context, u *models.User, passwordHash string) error {
	if _, ok := r.byEmail[u.Email]; ok {
		return apperr.ErrConflict
	}
	clone := *u
	r.byEmail[u.Email] = &clone
	r.hashes[u.Email] = passwordHash
	return nil
}

func (r *stubUserRepo) GetByEmail(_ context.Context, email string) (*models.User, string, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, "", nil
	}
	clone := *u
	return &clone, r.hashes[email], nil
}

func (r *stubUserRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			clone := *u
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *stubUserRepo) List(_ context.Context) ([]models.User, error) {
	var out []models.User
	for _, u := range r.byEmail {
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUserRepo) UpdateRole(_ context.Context, id, role string) error {
	for _, u := range r.byEmail {
		if u.ID == id {
			u.Role = role
			return nil
		}
	}
	return apperr.ErrNotFound
}

const testSecret = "test_secret"

func TestRegister_AlwaysEngineer(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, testSecret)

	tok, u, err := svc.Register(context.Background(), "jo@example.com", "pass1234", "Jo", "Field")
	require.NoError(t, err)
	assert.Equal(t, models.RoleEngineer, u.Role)

	claims, err := utils.ParseJWT(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.UserID)
	assert.Equal(t, models.RoleEngineer, claims.Role)
}

func TestRegister_Validation(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), testSecret)

	_, _, err := svc.Register(context.Background(), "  ", "pass1234", "Jo", "Field")
	assert.True(t, errors.Is(err, apperr.ErrInvalidArgument))

	_, _, err = svc.Register(context.Background(), "jo@example.com", "abc", "Jo", "Field")
	assert.True(t, errors.Is(err, apperr.ErrInvalidArgument))
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), testSecret)

	_, _, err := svc.Register(context.Background(), "jo@example.com", "pass1234", "Jo", "Field")
	require.NoError(t, err)

	_, _, err = svc.Register(context.Background(), "jo@example.com", "otherpass", "Jo", "Again")
	assert.True(t, errors.Is(err, apperr.ErrConflict))
}

func TestLogin(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, testSecret)

	_, _, err := svc.Register(context.Background(), "jo@example.com", "pass1234", "Jo", "Field")
	require.NoError(t, err)

	tok, u, err := svc.Login(context.Background(), "jo@example.com", "pass1234")
	require.NoError(t, err)
	assert.NotEmpty(t, tok)
	assert.Equal(t, "jo@example.com", u.Email)

	_, _, err = svc.Login(context.Background(), "jo@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login(context.Background(), "nobody@example.com", "pass1234")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestEnsureAdmin(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, testSecret)

	// No config: no-op.
	require.NoError(t, svc.EnsureAdmin(context.Background(), "", ""))
	assert.Empty(t, repo.byEmail)

	// Fresh seed.
	require.NoError(t, svc.EnsureAdmin(context.Background(), "root@example.com", "rootpass"))
	require.NotNil(t, repo.byEmail["root@example.com"])
	assert.Equal(t, models.RoleAdmin, repo.byEmail["root@example.com"].Role)

	// Existing engineer gets promoted.
	_, _, err := svc.Register(context.Background(), "eng@example.com", "pass1234", "Jo", "Field")
	require.NoError(t, err)
	require.NoError(t, svc.EnsureAdmin(context.Background(), "eng@example.com", "whatever"))
	assert.Equal(t, models.RoleAdmin, repo.byEmail["eng@example.com"].Role)
}
