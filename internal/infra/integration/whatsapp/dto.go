package whatsapp

type SendMessageInput struct {
	PhoneNumber  string   // e.g. "919876543210"
	TemplateName string   // e.g. "reservation_confirmation"
	Parameters   []string // e.g. []string{"Guest", "2025-01-01", "19:00", "2"}
}

type SendMessageResponse struct {
	MessageID string `json:"messages"`
	Contacts  []struct {
		Input string `json:"input"`
		WaID  string `json:"wa_id"`
	} `json:"contacts"`
	Error *ErrorResponse `json:"error"`
}

type ErrorResponse struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
	Type    string `json:"type"`
}
