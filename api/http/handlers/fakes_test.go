package handlers_test

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/ahmadblivin/studybuddy/pkg/account"
	"github.com/ahmadblivin/studybuddy/pkg/assignment"
	"github.com/ahmadblivin/studybuddy/pkg/chat"
)

// In-memory repository fakes standing in for the postgres adapters.

type memoryUserRepo struct {
	mu    sync.Mutex
	users map[string]account.User
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{users: make(map[string]account.User)}
}

func (r *memoryUserRepo) Create(ctx context.Context, user account.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := strings.ToLower(user.Email)
	if _, ok := r.users[key]; ok {
		return account.ErrUserAlreadyExists
	}
	r.users[key] = user
	return nil
}

func (r *memoryUserRepo) GetByEmail(ctx context.Context, email string) (account.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[strings.ToLower(email)]
	if !ok {
		return account.User{}, account.ErrNotFound
	}
	return user, nil
}

func (r *memoryUserRepo) UpdateName(ctx context.Context, email, name string) (account.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := strings.ToLower(email)
	user, ok := r.users[key]
	if !ok {
		return account.User{}, account.ErrNotFound
	}
	user.Name = name
	r.users[key] = user
	return user, nil
}

type memoryAssignmentRepo struct {
	mu    sync.Mutex
	items []assignment.Assignment
}

func (r *memoryAssignmentRepo) Create(ctx context.Context, a assignment.Assignment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, a)
	return nil
}

func (r *memoryAssignmentRepo) ListByOwner(ctx context.Context, ownerEmail string) ([]assignment.Assignment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var res []assignment.Assignment
	for _, a := range r.items {
		if a.OwnerEmail == ownerEmail {
			res = append(res, a)
		}
	}
	return res, nil
}

func (r *memoryAssignmentRepo) DeleteForOwner(ctx context.Context, ownerEmail string, id uuid.UUID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var kept []assignment.Assignment
	var removed int64
	for _, a := range r.items {
		if a.ID == id && a.OwnerEmail == ownerEmail {
			removed++
			continue
		}
		kept = append(kept, a)
	}
	r.items = kept
	return removed, nil
}

type memoryMessageRepo struct {
	mu       sync.Mutex
	messages []chat.Message
}

func (r *memoryMessageRepo) Create(ctx context.Context, m chat.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, m)
	return nil
}

func (r *memoryMessageRepo) ListAll(ctx context.Context) ([]chat.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	res := append([]chat.Message(nil), r.messages...)
	sort.SliceStable(res, func(i, j int) bool { return res[i].Timestamp.Before(res[j].Timestamp) })
	return res, nil
}
