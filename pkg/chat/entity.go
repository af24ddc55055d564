package chat

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Message is one entry in the single global chat log.
// SenderName is a snapshot of the sender's profile name at post time,
// not a live reference (a later rename does not rewrite history).
type Message struct {
	ID          uuid.UUID `json:"id"`
	SenderEmail string    `json:"senderEmail"`
	SenderName  string    `json:"senderName"`
	Text        string    `json:"text"`
	Timestamp   time.Time `json:"timestamp"`
}

// Repository is the persistence port for the append-only message log.
type Repository interface {
	Create(ctx context.Context, m Message) error
	// ListAll returns the full history in non-decreasing timestamp order.
	ListAll(ctx context.Context) ([]Message, error)
}
