package feedback

import "context"

// Repository defines the interface for feedback inbox persistence.
type Repository interface {
	// Insert adds a message to the inbox.
	Insert(ctx context.Context, msg *Message) error

	// List retrieves all messages, newest first.
	List(ctx context.Context) ([]*Message, error)

	// MarkRead flags a message as read.
	MarkRead(ctx context.Context, id string) error

	// Delete removes a message.
	Delete(ctx context.Context, id string) error
}
