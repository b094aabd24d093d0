package chat

type OpenInquiryRequest struct {
	Name    string `json:"name" validate:"required,max=120"`
	Email   string `json:"email" validate:"required,email,max=254"`
	Subject string `json:"subject" validate:"max=200"`
	Message string `json:"message" validate:"required,max=4000"`
}

type SendMessageRequest struct {
	Content string `json:"content" validate:"required,max=4000"`
}

type InquiryFilter struct {
	UserID int64
	Status InquiryStatus
	Limit  int
	Offset int
}
