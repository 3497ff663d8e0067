package usecase

import (
	"context"

	"chat-room-api/dto/req"
	"chat-room-api/dto/res"
)

type AuthUsecase interface {
	RegisterMember(ctx context.Context, request *req.RegisterRequest) (res.RegisterResponse, error)
	LoginMember(ctx context.Context, request *req.LoginRequest) (res.LoginResponse, error)
}
