package chat

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ahmadblivin/studybuddy/pkg/account"
)

// UseCase инкапсулирует общий чат: полная история и отправка сообщений.
type UseCase interface {
	List(ctx context.Context) ([]Message, error)
	Post(ctx context.Context, senderEmail, text string) (Message, error)
}

// ErrValidation простая ошибка валидации.
type ErrValidation string

func (e ErrValidation) Error() string { return string(e) }

type service struct {
	repo  Repository
	users account.UserRepository
}

func NewService(repo Repository, users account.UserRepository) UseCase {
	return &service{repo: repo, users: users}
}

func (s *service) List(ctx context.Context) ([]Message, error) {
	return s.repo.ListAll(ctx)
}

func (s *service) Post(ctx context.Context, senderEmail, text string) (Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Message{}, ErrValidation("message text is required")
	}
	// Resolve the display name at post time. Not atomic with profile
	// updates: a concurrent rename may leave a stale SenderName here.
	sender, err := s.users.GetByEmail(ctx, senderEmail)
	if err != nil {
		return Message{}, err
	}
	m := Message{
		ID:          uuid.New(),
		SenderEmail: sender.Email,
		SenderName:  sender.Name,
		Text:        text,
		Timestamp:   time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return Message{}, err
	}
	return m, nil
}
