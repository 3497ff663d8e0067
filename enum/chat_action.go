package enum

type ChatAction string

const (
	ChatActionNewRoom ChatAction = "newRoom"
)
