package req

type MessageRequest struct {
	Content string `json:"content" validate:"required"`
}
