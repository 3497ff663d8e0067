package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"chat-room-api/dto/req"
	"chat-room-api/dto/res"
	"chat-room-api/usecase"
)

type AuthHandler struct {
	usecase.AuthUsecase
	*logrus.Logger
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{AuthUsecase: authUsecase, Logger: logger}
}

func (handler *AuthHandler) RegisterMember(ctx *fiber.Ctx) error {
	// parse request
	payload := new(req.RegisterRequest)
	if err := ctx.BodyParser(payload); err != nil {
		return err
	}
	// get from useCase
	registerResponse, err := handler.AuthUsecase.RegisterMember(ctx.Context(), payload)
	if err != nil {
		handler.Logger.WithError(err).Errorf("Failed to register new member: %v", err)
		return err
	}
	// response
	response := res.CommonResponse[res.RegisterResponse]{
		Message:    "Successfully to register new member",
		StatusCode: fiber.StatusOK,
		Data:       registerResponse,
	}
	handler.Logger.Infof("Success register member with id: %d", registerResponse.MemberID)
	return ctx.Status(fiber.StatusOK).JSON(response)
}

func (handler *AuthHandler) LoginMember(ctx *fiber.Ctx) error {
	// parse request
	payload := new(req.LoginRequest)
	if err := ctx.BodyParser(payload); err != nil {
		return err
	}
	// get from useCase
	loginResponse, err := handler.AuthUsecase.LoginMember(ctx.Context(), payload)
	if err != nil {
		handler.Logger.WithError(err).Errorf("Failed to login: %v", err)
		return err
	}
	// response
	response := res.CommonResponse[res.LoginResponse]{
		Message:    "Successfully to login",
		StatusCode: fiber.StatusOK,
		Data:       loginResponse,
	}
	return ctx.Status(fiber.StatusOK).JSON(response)
}
