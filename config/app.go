package config

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/sirupsen/logrus"

	"chat-room-api/config/common"
	applogger "chat-room-api/config/logger"
	"chat-room-api/handler"
	"chat-room-api/middleware"
	"chat-room-api/notification"
	"chat-room-api/repository"
	"chat-room-api/routes"
	"chat-room-api/security"
	"chat-room-api/usecase"
)

type AppConfig struct {
	*fiber.App
	*validator.Validate
	*logrus.Logger
	AppLog *applogger.AppLogger
	*DBConfig
	*security.JWT
	*middleware.Middleware
	Dispatcher notification.Dispatcher
}

func RunServer() {
	newConfig := common.NewViper()
	app := NewFiber(newConfig)
	log := NewLogger()
	appLog := applogger.NewLogger()
	newDB := NewDB(newConfig, appLog)
	newValidator := NewValidator()
	newJWT := security.NewJWT(newConfig)
	newMiddleware := middleware.NewMiddleware(newConfig, newJWT, log)
	newDispatcher := notification.NewPushDispatcher(newConfig, log)

	// middleware CORS
	app.Use(cors.New(cors.Config{
		AllowOrigins: "http://localhost:8080",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	App(&AppConfig{
		App:        app,
		Validate:   newValidator,
		Logger:     log,
		AppLog:     appLog,
		DBConfig:   newDB,
		JWT:        newJWT,
		Middleware: newMiddleware,
		Dispatcher: newDispatcher,
	})

	if err := app.Listen(":" + newConfig.GetServerPort()); err != nil {
		log.WithError(err).Errorf("Failed to start server: %v", err)
	}
}

func App(aC *AppConfig) {
	newMemberRepository := repository.NewMemberRepository()
	newChatRepository := repository.NewChatRepository()
	newChatMemberRepository := repository.NewChatMemberRepository()
	newPushTokenRepository := repository.NewPushTokenRepository()
	newMessageRepository := repository.NewMessageRepository()

	newMembershipValidator := usecase.NewMembershipValidator(newChatRepository, newMemberRepository, newChatMemberRepository)

	newAuthUsecase := usecase.NewAuthUsecase(newMemberRepository, aC.Validate, aC.GetDB(), aC.Logger, aC.JWT)
	newUserUsecase := usecase.NewUserUsecase(newMemberRepository, newPushTokenRepository, aC.GetDB(), aC.AppLog)
	newChatUsecase := usecase.NewChatUsecase(newChatRepository, newChatMemberRepository, newPushTokenRepository, newMembershipValidator, aC.Validate, aC.GetDB(), aC.Logger, aC.Dispatcher)
	newMessageUsecase := usecase.NewMessageUsecase(newMessageRepository, newMemberRepository, newMembershipValidator, aC.Validate, aC.GetDB())

	newAuthHandler := handler.NewAuthHandler(newAuthUsecase, aC.Logger)
	newUserHandler := handler.NewUserHandler(newUserUsecase, aC.Logger)
	newChatHandler := handler.NewChatHandler(newChatUsecase, aC.Logger)
	newMessageHandler := handler.NewMessageHandler(newMessageUsecase, aC.Logger)

	route := routes.ConfigRoute{
		App:            aC.App,
		Middleware:     aC.Middleware,
		AuthHandler:    newAuthHandler,
		UserHandler:    newUserHandler,
		ChatHandler:    newChatHandler,
		MessageHandler: newMessageHandler,
	}
	route.GetRoute()
}
