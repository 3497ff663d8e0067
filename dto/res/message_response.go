package res

type MessageResponse struct {
	MessageID  string `json:"messageId"`
	Content    string `json:"content"`
	MemberID   uint   `json:"memberId"`
	SenderName string `json:"senderName"`
	CreatedAt  string `json:"createdAt"`
}
