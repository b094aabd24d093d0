package chat

import "errors"

var (
	ErrInquiryNotFound = errors.New("inquiry not found")
	ErrInquiryClosed   = errors.New("inquiry is closed")
	ErrForbidden       = errors.New("you do not have access to this inquiry")
	ErrEmptyMessage    = errors.New("message is empty")
)
