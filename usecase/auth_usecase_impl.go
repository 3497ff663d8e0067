package usecase

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"chat-room-api/apperror"
	"chat-room-api/dto/req"
	"chat-room-api/dto/res"
	"chat-room-api/entity"
	"chat-room-api/repository"
	"chat-room-api/security"
	"chat-room-api/util"
)

type AuthUsecaseImpl struct {
	*repository.MemberRepository
	*validator.Validate
	*gorm.DB
	*logrus.Logger
	*security.JWT
}

func NewAuthUsecase(memberRepository *repository.MemberRepository, validate *validator.Validate, DB *gorm.DB, logger *logrus.Logger, JWT *security.JWT) AuthUsecase {
	return &AuthUsecaseImpl{MemberRepository: memberRepository, Validate: validate, DB: DB, Logger: logger, JWT: JWT}
}

func (uc *AuthUsecaseImpl) RegisterMember(ctx context.Context, request *req.RegisterRequest) (res.RegisterResponse, error) {
	// validate request
	if err := uc.Validate.Struct(request); err != nil {
		uc.Logger.WithError(err).Error("Failed to validate register request")
		return res.RegisterResponse{}, apperror.FromValidation(err)
	}

	// start transaction
	trx := uc.DB.WithContext(ctx).Begin()
	defer trx.Rollback()

	// mapping request to entity
	hashPassword, err := util.HashPassword(request.Password)
	if err != nil {
		return res.RegisterResponse{}, err
	}

	newMember := &entity.Member{
		Username: request.Username,
		Email:    request.Email,
		Password: hashPassword,
	}

	// save to db; the unique index on email rejects a second registration
	if err := uc.MemberRepository.Save(ctx, trx, newMember); err != nil {
		uc.Logger.WithError(err).Error("Failed to save member")
		return res.RegisterResponse{}, apperror.Store(err)
	}

	// if success commit else rollback
	if err := trx.Commit().Error; err != nil {
		uc.Logger.WithError(err).Error("Failed to commit member")
		return res.RegisterResponse{}, apperror.Store(err)
	}

	// mapping response
	return res.RegisterResponse{
		MemberID: newMember.MemberID,
		Username: newMember.Username,
		Email:    newMember.Email,
	}, nil
}

func (uc *AuthUsecaseImpl) LoginMember(ctx context.Context, request *req.LoginRequest) (res.LoginResponse, error) {
	// validate request
	if err := uc.Validate.Struct(request); err != nil {
		return res.LoginResponse{}, apperror.FromValidation(err)
	}

	// find by email
	member, err := uc.MemberRepository.FindByEmail(ctx, uc.DB, request.Email)
	if err != nil {
		uc.Logger.WithError(err).Error("Failed to find member by email")
		return res.LoginResponse{}, apperror.Store(err)
	}
	if member == nil {
		return res.LoginResponse{}, fiber.ErrUnauthorized
	}

	// compare the password
	if matchPassword := util.ComparePassword(member.Password, request.Password); !matchPassword {
		return res.LoginResponse{}, fiber.ErrUnauthorized
	}

	// generate token
	token, err := uc.JWT.GenerateToken(member)
	if err != nil {
		uc.Logger.WithError(err).Error("Failed to generate token")
		return res.LoginResponse{}, err
	}

	// mapping response
	return res.LoginResponse{
		Token: token,
	}, nil
}
