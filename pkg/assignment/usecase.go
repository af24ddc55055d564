package assignment

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// UseCase инкапсулирует операции над заданиями пользователя.
type UseCase interface {
	List(ctx context.Context, ownerEmail string) ([]Assignment, error)
	Create(ctx context.Context, ownerEmail, title, due string) (Assignment, error)
	// Delete removes the owner's assignment. Deleting an id that does not
	// exist or belongs to someone else is still a success (zero rows).
	Delete(ctx context.Context, ownerEmail string, id uuid.UUID) error
}

// ErrValidation простая ошибка валидации.
type ErrValidation string

func (e ErrValidation) Error() string { return string(e) }

// dueLayouts are the accepted wire formats for the due date.
var dueLayouts = []string{time.RFC3339, "2006-01-02"}

type service struct {
	repo Repository
}

func NewService(repo Repository) UseCase { return &service{repo: repo} }

func (s *service) List(ctx context.Context, ownerEmail string) ([]Assignment, error) {
	return s.repo.ListByOwner(ctx, ownerEmail)
}

func (s *service) Create(ctx context.Context, ownerEmail, title, due string) (Assignment, error) {
	title = strings.TrimSpace(title)
	due = strings.TrimSpace(due)
	if title == "" || due == "" {
		return Assignment{}, ErrValidation("title and due date are required")
	}
	dueAt, err := parseDue(due)
	if err != nil {
		return Assignment{}, ErrValidation("invalid due date")
	}
	a := Assignment{
		ID:         uuid.New(),
		OwnerEmail: ownerEmail,
		Title:      title,
		Due:        dueAt,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return Assignment{}, err
	}
	return a, nil
}

func (s *service) Delete(ctx context.Context, ownerEmail string, id uuid.UUID) error {
	_, err := s.repo.DeleteForOwner(ctx, ownerEmail, id)
	return err
}

func parseDue(raw string) (time.Time, error) {
	var err error
	for _, layout := range dueLayouts {
		var t time.Time
		if t, err = time.Parse(layout, raw); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, err
}
