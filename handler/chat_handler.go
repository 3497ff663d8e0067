package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"chat-room-api/dto/req"
	"chat-room-api/dto/res"
	"chat-room-api/usecase"
)

type ChatHandler struct {
	usecase.ChatUsecase
	*logrus.Logger
}

func NewChatHandler(chatUsecase usecase.ChatUsecase, logger *logrus.Logger) *ChatHandler {
	return &ChatHandler{
		ChatUsecase: chatUsecase,
		Logger:      logger,
	}
}

func (handler *ChatHandler) CreateChat(c *fiber.Ctx) error {
	payload := new(req.CreateChatRequest)
	if err := c.BodyParser(payload); err != nil {
		return err
	}

	chatResponse, err := handler.ChatUsecase.CreateChat(c.Context(), payload)
	if err != nil {
		return err
	}

	response := res.CommonResponse[res.ChatResponse]{
		Message:    "Successfully to create chat",
		StatusCode: fiber.StatusOK,
		Data:       chatResponse,
	}
	return c.Status(fiber.StatusOK).JSON(response)
}

// GetChats godoc
// @Summary List chats of the caller
// @Description Retrieve every chat the authenticated member belongs to
// @Tags Chat
// @Produce json
// @Success 200 {object} res.CommonResponse[[]res.ChatResponse]
// @Router /api/v1/chats [get]
func (handler *ChatHandler) GetChats(c *fiber.Ctx) error {
	chatResponses, err := handler.ChatUsecase.ListChatsForMember(c.Context(), callerMemberID(c))
	if err != nil {
		return err
	}

	responses := res.CommonResponse[[]res.ChatResponse]{
		Message:    "Successfully to get all chats",
		StatusCode: fiber.StatusOK,
		Data:       chatResponses,
	}
	return c.Status(fiber.StatusOK).JSON(responses)
}

func (handler *ChatHandler) GetChatMembers(c *fiber.Ctx) error {
	chatID, err := parseChatID(c)
	if err != nil {
		return err
	}

	memberResponses, err := handler.ChatUsecase.ListMembers(c.Context(), chatID)
	if err != nil {
		return err
	}

	responses := res.CommonResponse[[]res.ChatMemberResponse]{
		Message:    "Successfully to get chat members",
		StatusCode: fiber.StatusOK,
		Data:       memberResponses,
	}
	return c.Status(fiber.StatusOK).JSON(responses)
}

func (handler *ChatHandler) JoinChat(c *fiber.Ctx) error {
	chatID, err := parseChatID(c)
	if err != nil {
		return err
	}

	if err := handler.ChatUsecase.AddSelfToChat(c.Context(), chatID, callerMemberID(c)); err != nil {
		return err
	}

	response := res.CommonResponse[res.ChatResponse]{
		Message:    "Successfully to join chat",
		StatusCode: fiber.StatusOK,
		Data:       res.ChatResponse{ChatID: chatID},
	}
	return c.Status(fiber.StatusOK).JSON(response)
}

func (handler *ChatHandler) AddMemberByEmail(c *fiber.Ctx) error {
	chatID, err := parseChatID(c)
	if err != nil {
		return err
	}

	email := c.Params("email")

	if err := handler.ChatUsecase.AddMemberByEmail(c.Context(), chatID, email); err != nil {
		return err
	}

	response := res.CommonResponse[res.ChatResponse]{
		Message:    "Successfully to add member to chat",
		StatusCode: fiber.StatusOK,
		Data:       res.ChatResponse{ChatID: chatID},
	}
	return c.Status(fiber.StatusOK).JSON(response)
}

func (handler *ChatHandler) RemoveMemberByEmail(c *fiber.Ctx) error {
	chatID, err := parseChatID(c)
	if err != nil {
		return err
	}

	email := c.Params("email")

	if err := handler.ChatUsecase.RemoveMemberByEmail(c.Context(), chatID, email); err != nil {
		return err
	}

	response := res.CommonResponse[res.ChatResponse]{
		Message:    "Successfully to remove member from chat",
		StatusCode: fiber.StatusOK,
		Data:       res.ChatResponse{ChatID: chatID},
	}
	return c.Status(fiber.StatusOK).JSON(response)
}

func (handler *ChatHandler) LeaveChat(c *fiber.Ctx) error {
	chatID, err := parseChatID(c)
	if err != nil {
		return err
	}

	leaveResponse, err := handler.ChatUsecase.LeaveChat(c.Context(), chatID, callerMemberID(c))
	if err != nil {
		return err
	}

	response := res.CommonResponse[res.LeaveChatResponse]{
		Message:    "Successfully to leave chat",
		StatusCode: fiber.StatusOK,
		Data:       leaveResponse,
	}
	return c.Status(fiber.StatusOK).JSON(response)
}
