package usecase

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"chat-room-api/apperror"
	"chat-room-api/config/logger"
	"chat-room-api/dto/res"
	"chat-room-api/entity"
	"chat-room-api/repository"
)

type UserUsecaseImpl struct {
	*repository.MemberRepository
	*repository.PushTokenRepository
	*gorm.DB
	Log *logger.AppLogger
}

func NewUserUsecase(memberRepository *repository.MemberRepository, pushTokenRepository *repository.PushTokenRepository, DB *gorm.DB, log *logger.AppLogger) UserUsecase {
	return &UserUsecaseImpl{MemberRepository: memberRepository, PushTokenRepository: pushTokenRepository, DB: DB, Log: log}
}

func (uc *UserUsecaseImpl) GetMemberByID(ctx context.Context, memberID uint) (res.UserResponse, error) {
	uc.Log.Http.Trace.Trace().
		Uint("memberId", memberID).
		Msg("Finding member by ID")

	member, err := uc.MemberRepository.FindByID(ctx, uc.DB, memberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			uc.Log.Http.Warning.Warn().
				Uint("memberId", memberID).
				Msg("Member not found")
			return res.UserResponse{}, apperror.MemberNotFound(memberID)
		}
		uc.Log.Http.Error.Error().
			Err(err).
			Uint("memberId", memberID).
			Msg("Failed to find member")
		return res.UserResponse{}, apperror.Store(err)
	}

	return res.UserResponse{
		MemberID:  member.MemberID,
		Username:  member.Username,
		Email:     member.Email,
		CreatedAt: member.CreatedAt.Format("2006-01-02 15:04:05"),
	}, nil
}

func (uc *UserUsecaseImpl) GetAllMembers(ctx context.Context) ([]res.UserResponse, error) {
	var members []entity.Member
	if err := uc.MemberRepository.FindAll(ctx, uc.DB, &members); err != nil {
		uc.Log.Http.Error.Error().
			Err(err).
			Msg("Failed to get all members")
		return nil, apperror.Store(err)
	}

	var userResponses []res.UserResponse
	for _, member := range members {
		userResponses = append(userResponses, res.UserResponse{
			MemberID:  member.MemberID,
			Username:  member.Username,
			Email:     member.Email,
			CreatedAt: member.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}

	uc.Log.Http.Info.Info().
		Int("memberCount", len(userResponses)).
		Msg("Successfully retrieved all members")

	return userResponses, nil
}

func (uc *UserUsecaseImpl) RegisterPushToken(ctx context.Context, memberID uint, token string) error {
	if err := uc.PushTokenRepository.Register(ctx, uc.DB, memberID, token); err != nil {
		uc.Log.Http.Error.Error().
			Err(err).
			Uint("memberId", memberID).
			Msg("Failed to register push token")
		return apperror.Store(err)
	}

	uc.Log.Http.Info.Info().
		Uint("memberId", memberID).
		Msg("Registered push token")

	return nil
}
