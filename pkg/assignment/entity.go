package assignment

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Assignment is a task owned by exactly one user, keyed by email.
type Assignment struct {
	ID         uuid.UUID `json:"id"`
	OwnerEmail string    `json:"ownerEmail"`
	Title      string    `json:"title"`
	Due        time.Time `json:"due"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Repository is the persistence port for assignments.
// Every read and delete is scoped by owner so one identity can never
// observe or remove another's records.
type Repository interface {
	Create(ctx context.Context, a Assignment) error
	ListByOwner(ctx context.Context, ownerEmail string) ([]Assignment, error)
	// DeleteForOwner reports how many rows matched; zero is not an error.
	DeleteForOwner(ctx context.Context, ownerEmail string, id uuid.UUID) (int64, error)
}
