package chat

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

// Repository handles all DB operations for the chat domain
type Repository interface {
	// CreateInquiry stores the inquiry and its first message together.
	CreateInquiry(ctx context.Context, inq *Inquiry, first *Message) error
	GetInquiry(ctx context.Context, id int64) (*Inquiry, error)
	ListInquiries(ctx context.Context, f InquiryFilter) ([]Inquiry, int64, error)
	CloseInquiry(ctx context.Context, id int64, at time.Time) error
	// DeleteClosedBefore removes closed inquiries, and their messages, whose
	// last message is older than cutoff.
	DeleteClosedBefore(ctx context.Context, cutoff time.Time) (int64, error)

	CreateMessage(ctx context.Context, msg *Message) error
	ListMessages(ctx context.Context, inquiryID int64, limit, offset int) ([]Message, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateInquiry(ctx context.Context, inq *Inquiry, first *Message) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(inq).Error; err != nil {
			return err
		}
		first.InquiryID = inq.ID
		return tx.Create(first).Error
	})
}

func (r *repository) GetInquiry(ctx context.Context, id int64) (*Inquiry, error) {
	var inq Inquiry
	err := r.db.WithContext(ctx).First(&inq, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInquiryNotFound
	}
	if err != nil {
		return nil, err
	}
	return &inq, nil
}

func (r *repository) ListInquiries(ctx context.Context, f InquiryFilter) ([]Inquiry, int64, error) {
	var (
		items []Inquiry
		total int64
	)

	q := r.db.WithContext(ctx).Model(&Inquiry{})
	if f.UserID > 0 {
		q = q.Where("user_id = ?", f.UserID)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	q = q.Order("last_message_at DESC, id DESC")
	if f.Limit > 0 {
		q = q.Limit(f.Limit).Offset(f.Offset)
	}
	if err := q.Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *repository) CloseInquiry(ctx context.Context, id int64, at time.Time) error {
	res := r.db.WithContext(ctx).
		Model(&Inquiry{}).
		Where("id = ? AND status = ?", id, InquiryOpen).
		Updates(map[string]any{"status": InquiryClosed, "closed_at": at, "updated_at": at})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		if _, err := r.GetInquiry(ctx, id); err != nil {
			return err
		}
		return ErrInquiryClosed
	}
	return nil
}

func (r *repository) DeleteClosedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	var deleted int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		stale := tx.Model(&Inquiry{}).
			Select("id").
			Where("status = ? AND last_message_at < ?", InquiryClosed, cutoff)

		if err := tx.Where("inquiry_id IN (?)", stale).Delete(&Message{}).Error; err != nil {
			return err
		}
		res := tx.Where("status = ? AND last_message_at < ?", InquiryClosed, cutoff).Delete(&Inquiry{})
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected
		return nil
	})
	return deleted, err
}

// CreateMessage stores msg and bumps the inquiry's last_message_at.
func (r *repository) CreateMessage(ctx context.Context, msg *Message) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(msg).Error; err != nil {
			return err
		}
		return tx.Model(&Inquiry{}).
			Where("id = ?", msg.InquiryID).
			Updates(map[string]any{"last_message_at": msg.CreatedAt, "updated_at": msg.CreatedAt}).Error
	})
}

func (r *repository) ListMessages(ctx context.Context, inquiryID int64, limit, offset int) ([]Message, error) {
	var msgs []Message
	q := r.db.WithContext(ctx).
		Where("inquiry_id = ?", inquiryID).
		Order("created_at ASC, id ASC")
	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}
	if err := q.Find(&msgs).Error; err != nil {
		return nil, err
	}
	return msgs, nil
}
