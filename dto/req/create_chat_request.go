package req

type CreateChatRequest struct {
	Name string `json:"name" validate:"required"`
}
