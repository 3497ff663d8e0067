package notification

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"chat-room-api/config/common"
	"chat-room-api/enum"
)

// ChatAction is the payload delivered to a single device token when a chat
// membership changes.
type ChatAction struct {
	Action   enum.ChatAction `json:"action"`
	ChatID   uint            `json:"chatId"`
	ChatName string          `json:"chatName"`
}

type pushMessage struct {
	To   string     `json:"to"`
	Data ChatAction `json:"data"`
}

// Dispatcher delivers chat actions to device tokens. Best effort: callers
// never consume a result, a lost notification is not a lost membership.
type Dispatcher interface {
	SendChatAction(token string, action enum.ChatAction, chatID uint, chatName string)
}

type PushDispatcher struct {
	gatewayURL string
	apiKey     string
	Log        *logrus.Logger
}

func NewPushDispatcher(config *common.Config, logger *logrus.Logger) *PushDispatcher {
	gatewayURL, apiKey := config.GetPushConfig()
	return &PushDispatcher{gatewayURL: gatewayURL, apiKey: apiKey, Log: logger}
}

func (d *PushDispatcher) SendChatAction(token string, action enum.ChatAction, chatID uint, chatName string) {
	agent := fiber.AcquireAgent()
	defer fiber.ReleaseAgent(agent)

	request := agent.Request()
	request.Header.SetMethod(fiber.MethodPost)
	request.Header.SetContentType(fiber.MIMEApplicationJSON)
	request.Header.Set(fiber.HeaderAuthorization, "key="+d.apiKey)
	request.SetRequestURI(d.gatewayURL)

	agent.Timeout(10 * time.Second)
	agent.JSON(pushMessage{
		To: token,
		Data: ChatAction{
			Action:   action,
			ChatID:   chatID,
			ChatName: chatName,
		},
	})

	if err := agent.Parse(); err != nil {
		d.Log.WithError(err).Error("Failed to build push request")
		return
	}

	statusCode, _, errs := agent.Bytes()
	if len(errs) > 0 {
		d.Log.WithError(errs[0]).Errorf("Failed to push %s to device", action)
		return
	}

	if statusCode >= fiber.StatusBadRequest {
		d.Log.Errorf("Push gateway rejected %s notification: status %d", action, statusCode)
	}
}
