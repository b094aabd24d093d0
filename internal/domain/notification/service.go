package notification

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"
)

const previewLen = 120

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

func (s *Service) Create(ctx context.Context, userID int64, t Type, title, body string, data Data) (*Notification, error) {
	n := &Notification{
		UserID:    userID,
		Type:      t,
		Title:     title,
		Body:      body,
		Data:      data,
		CreatedAt: s.now(),
	}
	if err := s.repo.Create(ctx, n); err != nil {
		return nil, fmt.Errorf("create notification: %w", err)
	}
	return n, nil
}

// List returns one page of the user's notifications, newest first, with the
// total and unread counts.
func (s *Service) List(ctx context.Context, userID int64, limit, offset int) ([]Notification, int64, int64, error) {
	items, total, err := s.repo.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, 0, 0, err
	}
	unread, err := s.repo.CountUnread(ctx, userID)
	if err != nil {
		return nil, 0, 0, err
	}
	return items, total, unread, nil
}

func (s *Service) UnreadCount(ctx context.Context, userID int64) (int64, error) {
	return s.repo.CountUnread(ctx, userID)
}

func (s *Service) MarkAsRead(ctx context.Context, id, userID int64) error {
	return s.repo.MarkAsRead(ctx, id, userID, s.now())
}

func (s *Service) MarkAllAsRead(ctx context.Context, userID int64) (int64, error) {
	return s.repo.MarkAllAsRead(ctx, userID, s.now())
}

func (s *Service) Delete(ctx context.Context, id, userID int64) error {
	return s.repo.Delete(ctx, id, userID)
}

// Cleanup removes notifications created more than olderThan ago.
func (s *Service) Cleanup(ctx context.Context, olderThan time.Duration) (int64, error) {
	if olderThan <= 0 {
		return 0, fmt.Errorf("cleanup: retention must be positive, got %s", olderThan)
	}
	return s.repo.DeleteOlderThan(ctx, s.now().Add(-olderThan))
}

// BookingStatusChanged tells a customer an admin moved their booking.
// Statuses without a customer-facing message are ignored.
func (s *Service) BookingStatusChanged(ctx context.Context, userID, bookingID int64, itemName, status string) error {
	var (
		t     Type
		title string
	)
	switch status {
	case "confirmed":
		t, title = TypeBookingConfirmed, "Booking confirmed"
	case "cancelled":
		t, title = TypeBookingCancelled, "Booking cancelled"
	case "completed":
		t, title = TypeBookingCompleted, "Booking completed"
	default:
		return nil
	}

	id := bookingID
	_, err := s.Create(ctx, userID, t, title,
		fmt.Sprintf("Your booking for %s is now %s.", itemName, status),
		Data{BookingID: &id, ItemName: itemName},
	)
	return err
}

// InquiryReplied tells the inquiry owner that support answered.
func (s *Service) InquiryReplied(ctx context.Context, userID, inquiryID int64, content string) error {
	id := inquiryID
	preview := truncate(content, previewLen)
	_, err := s.Create(ctx, userID, TypeInquiryReply, "New reply to your inquiry", preview,
		Data{InquiryID: &id, MessagePreview: preview},
	)
	return err
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n]) + "…"
}
