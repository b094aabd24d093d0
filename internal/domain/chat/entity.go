package chat

import "time"

type InquiryStatus string

const (
	InquiryOpen   InquiryStatus = "open"
	InquiryClosed InquiryStatus = "closed"
)

// SenderRole records who wrote a message. Guests are visitors who opened an
// inquiry without signing in.
type SenderRole string

const (
	SenderCustomer SenderRole = "customer"
	SenderAdmin    SenderRole = "admin"
	SenderGuest    SenderRole = "guest"
)

// Inquiry is a support conversation between a visitor and the back office.
type Inquiry struct {
	ID            int64         `gorm:"primaryKey" json:"id"`
	UserID        *int64        `gorm:"index" json:"user_id,omitempty"`
	Name          string        `gorm:"not null" json:"name"`
	Email         string        `gorm:"not null" json:"email"`
	Subject       string        `json:"subject"`
	Status        InquiryStatus `gorm:"index;not null;default:open" json:"status"`
	LastMessageAt time.Time     `gorm:"index" json:"last_message_at"`
	ClosedAt      *time.Time    `json:"closed_at,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

func (Inquiry) TableName() string { return "inquiries" }

func (i *Inquiry) OwnedBy(userID int64) bool {
	return userID > 0 && i.UserID != nil && *i.UserID == userID
}

type Message struct {
	ID         string     `gorm:"primaryKey;size:36" json:"id"`
	InquiryID  int64      `gorm:"index;not null" json:"inquiry_id"`
	SenderID   *int64     `json:"sender_id,omitempty"`
	SenderRole SenderRole `gorm:"not null" json:"sender_role"`
	Content    string     `gorm:"type:text;not null" json:"content"`
	CreatedAt  time.Time  `gorm:"index" json:"created_at"`
}

func (Message) TableName() string { return "inquiry_messages" }

// Actor is the caller of a chat operation. UserID is 0 for guests.
type Actor struct {
	UserID int64
	Role   string
}

func (a Actor) IsAdmin() bool { return a.Role == "admin" }

func (a Actor) senderRole() SenderRole {
	switch {
	case a.IsAdmin():
		return SenderAdmin
	case a.UserID > 0:
		return SenderCustomer
	default:
		return SenderGuest
	}
}
