package feedback_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/paptec/pregador/internal/feedback"
)

func newInbox(now func() time.Time) *feedback.Service {
	return feedback.NewService(feedback.ServiceConfig{
		Repository: feedback.NewInMemoryRepository(),
		Logger:     zerolog.Nop(),
		Now:        now,
	})
}

func TestService_Send(t *testing.T) {
	current := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	inbox := newInbox(func() time.Time { return current })
	ctx := context.Background()

	msg, err := inbox.Send(ctx, feedback.TypeSuggestion, "  gostaria de mais tons  ", "923111222")
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if msg.Message != "gostaria de mais tons" {
		t.Errorf("body not trimmed: %q", msg.Message)
	}
	if msg.Date != current.UnixMilli() {
		t.Errorf("expected date %d, got %d", current.UnixMilli(), msg.Date)
	}
	if msg.Read {
		t.Error("new message should be unread")
	}
}

func TestService_Send_DefaultsAndValidation(t *testing.T) {
	inbox := newInbox(nil)
	ctx := context.Background()

	msg, err := inbox.Send(ctx, "", "sem tipo", "")
	if err != nil {
		t.Fatalf("send without type: %v", err)
	}
	if msg.Type != feedback.TypeOther {
		t.Errorf("expected default type %q, got %q", feedback.TypeOther, msg.Type)
	}

	if _, err := inbox.Send(ctx, "rant", "tipo errado", ""); !errors.Is(err, feedback.ErrInvalidType) {
		t.Errorf("expected ErrInvalidType, got %v", err)
	}
	if _, err := inbox.Send(ctx, feedback.TypeComplaint, "   ", ""); !errors.Is(err, feedback.ErrEmptyMessage) {
		t.Errorf("expected ErrEmptyMessage, got %v", err)
	}
}

func TestService_List_NewestFirst(t *testing.T) {
	current := time.Now()
	inbox := newInbox(func() time.Time { return current })
	ctx := context.Background()

	if _, err := inbox.Send(ctx, feedback.TypeSuggestion, "primeira", ""); err != nil {
		t.Fatal(err)
	}
	current = current.Add(time.Minute)
	if _, err := inbox.Send(ctx, feedback.TypeComplaint, "segunda", ""); err != nil {
		t.Fatal(err)
	}

	all, err := inbox.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(all))
	}
	if all[0].Message != "segunda" {
		t.Errorf("expected newest first, got %q", all[0].Message)
	}
}

func TestService_MarkReadAndUnreadCount(t *testing.T) {
	current := time.Now()
	inbox := newInbox(func() time.Time { return current })
	ctx := context.Background()

	msg, err := inbox.Send(ctx, feedback.TypeOther, "uma", "")
	if err != nil {
		t.Fatal(err)
	}
	current = current.Add(time.Second)
	if _, err := inbox.Send(ctx, feedback.TypeOther, "duas", ""); err != nil {
		t.Fatal(err)
	}

	count, err := inbox.UnreadCount(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if count != 2 {
		t.Errorf("expected 2 unread, got %d", count)
	}

	if err := inbox.MarkRead(ctx, msg.ID); err != nil {
		t.Fatalf("mark read: %v", err)
	}

	count, err = inbox.UnreadCount(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Errorf("expected 1 unread after marking, got %d", count)
	}

	if err := inbox.MarkRead(ctx, "missing"); !errors.Is(err, feedback.ErrMessageNotFound) {
		t.Errorf("expected ErrMessageNotFound, got %v", err)
	}
}

func TestService_Delete(t *testing.T) {
	inbox := newInbox(nil)
	ctx := context.Background()

	msg, err := inbox.Send(ctx, feedback.TypeComplaint, "apagar", "")
	if err != nil {
		t.Fatal(err)
	}

	if err := inbox.Delete(ctx, msg.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	all, err := inbox.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 0 {
		t.Errorf("expected empty inbox, got %d messages", len(all))
	}

	if err := inbox.Delete(ctx, msg.ID); !errors.Is(err, feedback.ErrMessageNotFound) {
		t.Errorf("expected ErrMessageNotFound, got %v", err)
	}
}
