package usecase

import (
	"context"

	"chat-room-api/dto/res"
)

type UserUsecase interface {
	GetMemberByID(ctx context.Context, memberID uint) (res.UserResponse, error)
	GetAllMembers(ctx context.Context) ([]res.UserResponse, error)
	RegisterPushToken(ctx context.Context, memberID uint, token string) error
}
