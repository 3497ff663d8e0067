package usecase

import (
	"context"

	"chat-room-api/dto/req"
	"chat-room-api/dto/res"
)

type MessageUsecase interface {
	SendMessage(ctx context.Context, chatID, memberID uint, request *req.MessageRequest) (res.MessageResponse, error)
	ListMessages(ctx context.Context, chatID, memberID uint) ([]res.MessageResponse, error)
}
