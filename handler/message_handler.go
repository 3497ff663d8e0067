package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"chat-room-api/dto/req"
	"chat-room-api/dto/res"
	"chat-room-api/usecase"
)

type MessageHandler struct {
	usecase.MessageUsecase
	*logrus.Logger
}

func NewMessageHandler(messageUsecase usecase.MessageUsecase, logger *logrus.Logger) *MessageHandler {
	return &MessageHandler{MessageUsecase: messageUsecase, Logger: logger}
}

func (handler *MessageHandler) SendMessage(c *fiber.Ctx) error {
	chatID, err := parseChatID(c)
	if err != nil {
		return err
	}

	payload := new(req.MessageRequest)
	if err := c.BodyParser(payload); err != nil {
		return err
	}

	messageResponse, err := handler.MessageUsecase.SendMessage(c.Context(), chatID, callerMemberID(c), payload)
	if err != nil {
		handler.Logger.WithError(err).Error("Failed to send message")
		return err
	}

	response := res.CommonResponse[res.MessageResponse]{
		Message:    "Successfully to send message",
		StatusCode: fiber.StatusOK,
		Data:       messageResponse,
	}
	return c.Status(fiber.StatusOK).JSON(response)
}

func (handler *MessageHandler) GetMessages(c *fiber.Ctx) error {
	chatID, err := parseChatID(c)
	if err != nil {
		return err
	}

	messageResponses, err := handler.MessageUsecase.ListMessages(c.Context(), chatID, callerMemberID(c))
	if err != nil {
		handler.Logger.WithError(err).Error("Failed to get messages by chat ID")
		return err
	}

	responses := res.CommonResponse[[]res.MessageResponse]{
		Message:    "Successfully to get messages",
		StatusCode: fiber.StatusOK,
		Data:       messageResponses,
	}
	return c.Status(fiber.StatusOK).JSON(responses)
}
