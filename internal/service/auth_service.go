package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"fieldbook/internal/apperr"
	"fieldbook/internal/models"
	"fieldbook/internal/repository"
	"fieldbook/internal/utils"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

const tokenTTL = 7 * 24 * time.Hour

type AuthService struct {
	users         repository.UserRepository
	sessionSecret string
}

func NewAuthService(users repository.UserRepository, sessionSecret string) *AuthService {
	return &AuthService{users: users, sessionSecret: sessionSecret}
}

// Register creates an engineer account. Self-registration never grants admin;
// that role only comes from the startup seed.
func (a *AuthService) Register(ctx context.Context, email, password, firstName, lastName string) (string, *models.User, error) {
	email = strings.TrimSpace(email)
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	if email == "" || firstName == "" || lastName == "" || len(password) < 4 {
		return "", nil, apperr.Invalid("invalid payload")
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return "", nil, err
	}
	u := &models.User{
		ID:        utils.NewID("u_"),
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
		Role:      models.RoleEngineer,
		CreatedAt: time.Now().UTC(),
	}
	if err := a.users.Create(ctx, u, hash); err != nil {
		return "", nil, err
	}
	tok, err := utils.SignJWT(a.sessionSecret, u.ID, u.Email, u.Role, tokenTTL)
	if err != nil {
		return "", nil, err
	}
	return tok, u, nil
}

func (a *AuthService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	u, hash, err := a.users.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return "", nil, err
	}
	if u == nil {
		return "", nil, ErrInvalidCredentials
	}
	if !utils.CheckPassword(hash, password) {
		return "", nil, ErrInvalidCredentials
	}
	tok, err := utils.SignJWT(a.sessionSecret, u.ID, u.Email, u.Role, tokenTTL)
	if err != nil {
		return "", nil, err
	}
	return tok, u, nil
}

// EnsureAdmin seeds (or promotes) the configured admin account at startup.
// This is the only path that mutates a role.
func (a *AuthService) EnsureAdmin(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return nil
	}
	existing, _, err := a.users.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if existing == nil {
		hash, err := utils.HashPassword(password)
		if err != nil {
			return err
		}
		u := &models.User{
			ID:        utils.NewID("u_"),
			Email:     email,
			FirstName: "Admin",
			LastName:  "User",
			Role:      models.RoleAdmin,
			CreatedAt: time.Now().UTC(),
		}
		return a.users.Create(ctx, u, hash)
	}
	if existing.Role != models.RoleAdmin {
		return a.users.UpdateRole(ctx, existing.ID, models.RoleAdmin)
	}
	return nil
}
