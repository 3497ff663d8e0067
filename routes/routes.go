package routes

import (
	"github.com/gofiber/fiber/v2"

	"chat-room-api/handler"
	"chat-room-api/middleware"
)

type ConfigRoute struct {
	*fiber.App
	*middleware.Middleware
	*handler.AuthHandler
	*handler.UserHandler
	*handler.ChatHandler
	*handler.MessageHandler
}

func (rc *ConfigRoute) GetRoute() {
	rc.GetPublicRoute()
	rc.GetProtectedRoute()
}

func (rc *ConfigRoute) GetPublicRoute() {
	app := rc.App.Group("/api/v1")
	app.Post("/auth/register", rc.AuthHandler.RegisterMember)
	app.Post("/auth/login", rc.AuthHandler.LoginMember)
}

func (rc *ConfigRoute) GetProtectedRoute() {
	app := rc.App.Group("/api/v1")
	app.Use(rc.Middleware.JWTProtected)
	app.Use(rc.Middleware.ExtractMemberID)

	app.Get("/auth/me", rc.UserHandler.GetMe)

	app.Get("/users", rc.UserHandler.GetAllUsers)
	app.Post("/devices", rc.UserHandler.RegisterDevice)

	app.Post("/chats", rc.ChatHandler.CreateChat)
	app.Get("/chats", rc.ChatHandler.GetChats)

	// register the literal "messages" segment before the :email wildcard
	app.Post("/chats/:chatId/messages", rc.MessageHandler.SendMessage)
	app.Get("/chats/:chatId/messages", rc.MessageHandler.GetMessages)

	app.Get("/chats/:chatId", rc.ChatHandler.GetChatMembers)
	app.Put("/chats/:chatId", rc.ChatHandler.JoinChat)
	app.Delete("/chats/:chatId", rc.ChatHandler.LeaveChat)

	app.Put("/chats/:chatId/:email", rc.ChatHandler.AddMemberByEmail)
	app.Delete("/chats/:chatId/:email", rc.ChatHandler.RemoveMemberByEmail)
}
