package chat

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Publisher pushes realtime events to subscribers of an inquiry.
type Publisher interface {
	Publish(inquiryID int64, event *ServerEvent)
}

// Notifier tells a signed-in customer that support replied.
type Notifier interface {
	InquiryReplied(ctx context.Context, userID, inquiryID int64, content string) error
}

// Service handles chat business logic
type Service struct {
	repo     Repository
	events   Publisher
	notifier Notifier
	now      func() time.Time
}

// NewService builds the service. events may be nil.
func NewService(repo Repository, events Publisher) *Service {
	return &Service{repo: repo, events: events, now: time.Now}
}

// SetPublisher attaches the realtime fan-out. It must be called before the
// service handles requests.
func (s *Service) SetPublisher(p Publisher) { s.events = p }

// WithNotifier enables offline notifications for admin replies.
func (s *Service) WithNotifier(n Notifier) *Service {
	s.notifier = n
	return s
}

// Open starts an inquiry. Signed-in visitors are linked to it.
func (s *Service) Open(ctx context.Context, actor Actor, req OpenInquiryRequest) (*Inquiry, *Message, error) {
	content := strings.TrimSpace(req.Message)
	if content == "" {
		return nil, nil, ErrEmptyMessage
	}

	now := s.now()
	inq := &Inquiry{
		Name:          strings.TrimSpace(req.Name),
		Email:         strings.ToLower(strings.TrimSpace(req.Email)),
		Subject:       strings.TrimSpace(req.Subject),
		Status:        InquiryOpen,
		LastMessageAt: now,
	}
	if actor.UserID > 0 {
		uid := actor.UserID
		inq.UserID = &uid
	}

	first := s.newMessage(actor, content, now)
	if err := s.repo.CreateInquiry(ctx, inq, first); err != nil {
		return nil, nil, fmt.Errorf("create inquiry: %w", err)
	}
	return inq, first, nil
}

// Authorize returns the inquiry if actor may read it: admins and the
// customer who opened it.
func (s *Service) Authorize(ctx context.Context, actor Actor, inquiryID int64) (*Inquiry, error) {
	inq, err := s.repo.GetInquiry(ctx, inquiryID)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin() && !inq.OwnedBy(actor.UserID) {
		return nil, ErrForbidden
	}
	return inq, nil
}

func (s *Service) ListMine(ctx context.Context, userID int64, limit, offset int) ([]Inquiry, int64, error) {
	return s.repo.ListInquiries(ctx, InquiryFilter{UserID: userID, Limit: limit, Offset: offset})
}

func (s *Service) List(ctx context.Context, status InquiryStatus, limit, offset int) ([]Inquiry, int64, error) {
	return s.repo.ListInquiries(ctx, InquiryFilter{Status: status, Limit: limit, Offset: offset})
}

func (s *Service) Messages(ctx context.Context, actor Actor, inquiryID int64, limit, offset int) ([]Message, error) {
	if _, err := s.Authorize(ctx, actor, inquiryID); err != nil {
		return nil, err
	}
	return s.repo.ListMessages(ctx, inquiryID, limit, offset)
}

// Reply adds a message to an open inquiry and notifies subscribers.
func (s *Service) Reply(ctx context.Context, actor Actor, inquiryID int64, content string) (*Message, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyMessage
	}

	inq, err := s.Authorize(ctx, actor, inquiryID)
	if err != nil {
		return nil, err
	}
	if inq.Status == InquiryClosed {
		return nil, ErrInquiryClosed
	}

	msg := s.newMessage(actor, content, s.now())
	msg.InquiryID = inq.ID
	if err := s.repo.CreateMessage(ctx, msg); err != nil {
		return nil, fmt.Errorf("create message: %w", err)
	}

	s.publish(inq.ID, NewMessageEvent(inq.ID, msg))
	if actor.IsAdmin() && inq.UserID != nil && s.notifier != nil {
		_ = s.notifier.InquiryReplied(ctx, *inq.UserID, inq.ID, content)
	}
	return msg, nil
}

func (s *Service) Close(ctx context.Context, inquiryID int64) (*Inquiry, error) {
	if err := s.repo.CloseInquiry(ctx, inquiryID, s.now()); err != nil {
		return nil, err
	}
	s.publish(inquiryID, NewClosedEvent(inquiryID))
	return s.repo.GetInquiry(ctx, inquiryID)
}

// CleanupClosed deletes closed inquiries idle for longer than olderThan.
func (s *Service) CleanupClosed(ctx context.Context, olderThan time.Duration) (int64, error) {
	if olderThan <= 0 {
		return 0, fmt.Errorf("cleanup: retention must be positive, got %s", olderThan)
	}
	return s.repo.DeleteClosedBefore(ctx, s.now().Add(-olderThan))
}

func (s *Service) newMessage(actor Actor, content string, at time.Time) *Message {
	msg := &Message{
		ID:         uuid.New().String(),
		SenderRole: actor.senderRole(),
		Content:    content,
		CreatedAt:  at,
	}
	if actor.UserID > 0 {
		uid := actor.UserID
		msg.SenderID = &uid
	}
	return msg
}

func (s *Service) publish(inquiryID int64, ev *ServerEvent) {
	if s.events != nil {
		s.events.Publish(inquiryID, ev)
	}
}
