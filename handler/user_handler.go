package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"chat-room-api/apperror"
	"chat-room-api/dto/req"
	"chat-room-api/dto/res"
	"chat-room-api/usecase"
)

type UserHandler struct {
	usecase.UserUsecase
	*logrus.Logger
}

func NewUserHandler(userUsecase usecase.UserUsecase, logger *logrus.Logger) *UserHandler {
	return &UserHandler{UserUsecase: userUsecase, Logger: logger}
}

func (handler *UserHandler) GetMe(ctx *fiber.Ctx) error {
	userResponse, err := handler.UserUsecase.GetMemberByID(ctx.Context(), callerMemberID(ctx))
	if err != nil {
		handler.Logger.WithError(err).Errorln("Failed to get member by token")
		return err
	}

	response := res.CommonResponse[res.UserResponse]{
		Message:    "Successfully to get member",
		StatusCode: fiber.StatusOK,
		Data:       userResponse,
	}
	return ctx.Status(fiber.StatusOK).JSON(response)
}

func (handler *UserHandler) GetAllUsers(ctx *fiber.Ctx) error {
	userResponses, err := handler.UserUsecase.GetAllMembers(ctx.Context())
	if err != nil {
		handler.Logger.WithError(err).Errorln("Failed to get all members")
		return err
	}

	responses := res.CommonResponse[[]res.UserResponse]{
		Message:    "Successfully to get all members",
		StatusCode: fiber.StatusOK,
		Data:       userResponses,
	}
	return ctx.Status(fiber.StatusOK).JSON(responses)
}

func (handler *UserHandler) RegisterDevice(ctx *fiber.Ctx) error {
	payload := new(req.PushTokenRequest)
	if err := ctx.BodyParser(payload); err != nil {
		return err
	}
	if payload.Token == "" {
		return apperror.MissingParameter("token")
	}

	if err := handler.UserUsecase.RegisterPushToken(ctx.Context(), callerMemberID(ctx), payload.Token); err != nil {
		return err
	}

	response := res.CommonResponse[string]{
		Message:    "Successfully to register device token",
		StatusCode: fiber.StatusOK,
		Data:       "registered",
	}
	return ctx.Status(fiber.StatusOK).JSON(response)
}
