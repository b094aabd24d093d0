package chat

const (
	EventNewMessage    = "new_message"
	EventTyping        = "typing"
	EventInquiryClosed = "inquiry_closed"
	EventSubscribed    = "subscribed"
	EventError         = "error"
)

// ClientFrame is what browsers send over the socket.
type ClientFrame struct {
	Type      string `json:"type"`
	InquiryID int64  `json:"inquiry_id"`
}

// ServerEvent is pushed to subscribers.
type ServerEvent struct {
	Type         string     `json:"type"`
	InquiryID    int64      `json:"inquiry_id,omitempty"`
	Message      *Message   `json:"message,omitempty"`
	UserID       int64      `json:"user_id,omitempty"`
	Role         SenderRole `json:"role,omitempty"`
	ErrorCode    string     `json:"code,omitempty"`
	ErrorMessage string     `json:"error,omitempty"`
}

func NewMessageEvent(inquiryID int64, msg *Message) *ServerEvent {
	return &ServerEvent{Type: EventNewMessage, InquiryID: inquiryID, Message: msg}
}

func NewTypingEvent(inquiryID int64, actor Actor) *ServerEvent {
	return &ServerEvent{Type: EventTyping, InquiryID: inquiryID, UserID: actor.UserID, Role: actor.senderRole()}
}

func NewClosedEvent(inquiryID int64) *ServerEvent {
	return &ServerEvent{Type: EventInquiryClosed, InquiryID: inquiryID}
}

func NewErrorEvent(inquiryID int64, code, message string) *ServerEvent {
	return &ServerEvent{Type: EventError, InquiryID: inquiryID, ErrorCode: code, ErrorMessage: message}
}
