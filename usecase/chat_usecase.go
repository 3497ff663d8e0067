package usecase

import (
	"context"

	"chat-room-api/dto/req"
	"chat-room-api/dto/res"
)

type ChatUsecase interface {
	CreateChat(ctx context.Context, request *req.CreateChatRequest) (res.ChatResponse, error)
	ListChatsForMember(ctx context.Context, memberID uint) ([]res.ChatResponse, error)
	ListMembers(ctx context.Context, chatID uint) ([]res.ChatMemberResponse, error)
	AddSelfToChat(ctx context.Context, chatID, memberID uint) error
	AddMemberByEmail(ctx context.Context, chatID uint, email string) error
	RemoveMemberByEmail(ctx context.Context, chatID uint, email string) error
	LeaveChat(ctx context.Context, chatID, memberID uint) (res.LeaveChatResponse, error)
}
