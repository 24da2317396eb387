package feedback

import (
	"context"
	"sync"
)

// InMemoryRepository is an in-memory implementation of Repository.
// This is intended for testing. Production should use the PostgreSQL implementation.
type InMemoryRepository struct {
	mu       sync.RWMutex
	messages []*Message // newest first
}

// NewInMemoryRepository creates a new in-memory feedback repository.
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

// Insert adds a message to the inbox.
func (r *InMemoryRepository) Insert(_ context.Context, msg *Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *msg
	r.messages = append([]*Message{&copied}, r.messages...)
	return nil
}

// List retrieves all messages, newest first.
func (r *InMemoryRepository) List(_ context.Context) ([]*Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Message, len(r.messages))
	for i, m := range r.messages {
		copied := *m
		out[i] = &copied
	}
	return out, nil
}

// MarkRead flags a message as read.
func (r *InMemoryRepository) MarkRead(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, m := range r.messages {
		if m.ID == id {
			m.Read = true
			return nil
		}
	}
	return ErrMessageNotFound
}

// Delete removes a message.
func (r *InMemoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, m := range r.messages {
		if m.ID == id {
			r.messages = append(r.messages[:i], r.messages[i+1:]...)
			return nil
		}
	}
	return ErrMessageNotFound
}
