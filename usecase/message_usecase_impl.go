package usecase

import (
	"context"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	"chat-room-api/apperror"
	"chat-room-api/dto/req"
	"chat-room-api/dto/res"
	"chat-room-api/entity"
	"chat-room-api/repository"
)

type messageUsecase struct {
	messageRepo *repository.MessageRepository
	memberRepo  *repository.MemberRepository
	validator   *MembershipValidator
	validate    *validator.Validate
	db          *gorm.DB
}

func NewMessageUsecase(messageRepo *repository.MessageRepository, memberRepo *repository.MemberRepository, membershipValidator *MembershipValidator, validate *validator.Validate, db *gorm.DB) MessageUsecase {
	return &messageUsecase{
		messageRepo: messageRepo,
		memberRepo:  memberRepo,
		validator:   membershipValidator,
		validate:    validate,
		db:          db,
	}
}

func (uc *messageUsecase) SendMessage(ctx context.Context, chatID, memberID uint, request *req.MessageRequest) (res.MessageResponse, error) {
	if err := uc.validate.Struct(request); err != nil {
		return res.MessageResponse{}, apperror.FromValidation(err)
	}

	exists, err := uc.validator.ChatExists(ctx, uc.db, chatID)
	if err != nil {
		return res.MessageResponse{}, err
	}
	if !exists {
		return res.MessageResponse{}, apperror.ChatNotFound(chatID)
	}

	// only members post into a chat
	joined, err := uc.validator.IsMember(ctx, uc.db, chatID, memberID)
	if err != nil {
		return res.MessageResponse{}, err
	}
	if !joined {
		return res.MessageResponse{}, apperror.NotInChat()
	}

	sender, err := uc.memberRepo.FindByID(ctx, uc.db, memberID)
	if err != nil {
		return res.MessageResponse{}, apperror.Store(err)
	}

	message := entity.Message{
		Content:  request.Content,
		ChatID:   chatID,
		MemberID: memberID,
	}
	if err := uc.messageRepo.Save(ctx, uc.db, &message); err != nil {
		return res.MessageResponse{}, apperror.Store(err)
	}

	return res.MessageResponse{
		MessageID:  message.ID,
		Content:    message.Content,
		MemberID:   message.MemberID,
		SenderName: sender.Username,
		CreatedAt:  message.CreatedAt.Format("2006-01-02 15:04:05"),
	}, nil
}

func (uc *messageUsecase) ListMessages(ctx context.Context, chatID, memberID uint) ([]res.MessageResponse, error) {
	exists, err := uc.validator.ChatExists(ctx, uc.db, chatID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperror.ChatNotFound(chatID)
	}

	joined, err := uc.validator.IsMember(ctx, uc.db, chatID, memberID)
	if err != nil {
		return nil, err
	}
	if !joined {
		return nil, apperror.NotInChat()
	}

	// insertion order, nothing fancier is promised
	messages, err := uc.messageRepo.FindAllByChatID(ctx, uc.db, chatID)
	if err != nil {
		return nil, apperror.Store(err)
	}

	responses := make([]res.MessageResponse, 0, len(messages))
	for _, message := range messages {
		responses = append(responses, res.MessageResponse{
			MessageID:  message.ID,
			Content:    message.Content,
			MemberID:   message.MemberID,
			SenderName: message.Sender.Username,
			CreatedAt:  message.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}

	return responses, nil
}
