package res

type ChatResponse struct {
	ChatID uint   `json:"chatId"`
	Name   string `json:"name"`
}

type ChatMemberResponse struct {
	Email    string `json:"email"`
	Username string `json:"username"`
}

// LeaveChatResponse reports whether the room itself went away with the
// caller. The chat is only torn down when its last member leaves.
type LeaveChatResponse struct {
	ChatID      uint `json:"chatId"`
	ChatDeleted bool `json:"chatDeleted"`
}
