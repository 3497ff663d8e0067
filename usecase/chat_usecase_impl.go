package usecase

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"chat-room-api/apperror"
	"chat-room-api/dto/req"
	"chat-room-api/dto/res"
	"chat-room-api/entity"
	"chat-room-api/enum"
	"chat-room-api/notification"
	"chat-room-api/repository"
)

type ChatUsecaseImpl struct {
	*repository.ChatRepository
	*repository.ChatMemberRepository
	*repository.PushTokenRepository
	Validator *MembershipValidator
	*validator.Validate
	*gorm.DB
	*logrus.Logger
	Dispatcher notification.Dispatcher
}

func NewChatUsecase(
	chatRepository *repository.ChatRepository,
	chatMemberRepository *repository.ChatMemberRepository,
	pushTokenRepository *repository.PushTokenRepository,
	membershipValidator *MembershipValidator,
	validate *validator.Validate,
	DB *gorm.DB,
	logger *logrus.Logger,
	dispatcher notification.Dispatcher,
) ChatUsecase {
	return &ChatUsecaseImpl{
		ChatRepository:       chatRepository,
		ChatMemberRepository: chatMemberRepository,
		PushTokenRepository:  pushTokenRepository,
		Validator:            membershipValidator,
		Validate:             validate,
		DB:                   DB,
		Logger:               logger,
		Dispatcher:           dispatcher,
	}
}

func (uc *ChatUsecaseImpl) CreateChat(ctx context.Context, request *req.CreateChatRequest) (res.ChatResponse, error) {
	// validate request
	if err := uc.Validate.Struct(request); err != nil {
		return res.ChatResponse{}, apperror.FromValidation(err)
	}

	// insert chat
	chat := entity.Chat{Name: request.Name}
	if err := uc.ChatRepository.Save(ctx, uc.DB, &chat); err != nil {
		uc.Logger.WithError(err).Error("Failed to create chat")
		return res.ChatResponse{}, apperror.Store(err)
	}

	uc.Logger.Infof("Created chat %d (%s)", chat.ChatID, chat.Name)
	return res.ChatResponse{ChatID: chat.ChatID, Name: chat.Name}, nil
}

func (uc *ChatUsecaseImpl) ListChatsForMember(ctx context.Context, memberID uint) ([]res.ChatResponse, error) {
	chats, err := uc.ChatRepository.FindAllByMemberID(ctx, uc.DB, memberID)
	if err != nil {
		uc.Logger.WithError(err).Error("Failed to list chats for member")
		return nil, apperror.Store(err)
	}

	chatResponses := make([]res.ChatResponse, 0, len(chats))
	for _, chat := range chats {
		chatResponses = append(chatResponses, res.ChatResponse{
			ChatID: chat.ChatID,
			Name:   chat.Name,
		})
	}

	return chatResponses, nil
}

func (uc *ChatUsecaseImpl) ListMembers(ctx context.Context, chatID uint) ([]res.ChatMemberResponse, error) {
	exists, err := uc.Validator.ChatExists(ctx, uc.DB, chatID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperror.ChatNotFound(chatID)
	}

	members, err := uc.Validator.memberRepo.FindAllByChatID(ctx, uc.DB, chatID)
	if err != nil {
		return nil, apperror.Store(err)
	}

	memberResponses := make([]res.ChatMemberResponse, 0, len(members))
	for _, member := range members {
		memberResponses = append(memberResponses, res.ChatMemberResponse{
			Email:    member.Email,
			Username: member.Username,
		})
	}

	return memberResponses, nil
}

func (uc *ChatUsecaseImpl) AddSelfToChat(ctx context.Context, chatID, memberID uint) error {
	// 1. chat exists
	exists, err := uc.Validator.ChatExists(ctx, uc.DB, chatID)
	if err != nil {
		return err
	}
	if !exists {
		return apperror.ChatNotFound(chatID)
	}

	// 2. caller exists; the caller is already authenticated, this guards
	// against a stale token for a deleted account
	memberExists, err := uc.Validator.MemberExistsByID(ctx, uc.DB, memberID)
	if err != nil {
		return err
	}
	if !memberExists {
		return apperror.MemberNotFound(memberID)
	}

	// 3. not already joined
	joined, err := uc.Validator.IsMember(ctx, uc.DB, chatID, memberID)
	if err != nil {
		return err
	}
	if joined {
		return apperror.DuplicateMembership()
	}

	// 4. insert membership; a concurrent join loses against the unique
	// index and is reported the same way as the pre-check
	if err := uc.ChatMemberRepository.Add(ctx, uc.DB, chatID, memberID); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperror.DuplicateMembership()
		}
		uc.Logger.WithError(err).Error("Failed to add member to chat")
		return apperror.Store(err)
	}

	uc.Logger.Infof("Member %d joined chat %d", memberID, chatID)
	return nil
}

func (uc *ChatUsecaseImpl) AddMemberByEmail(ctx context.Context, chatID uint, email string) error {
	// 1. chat exists, keep the name for the notification payload
	chat, err := uc.ChatRepository.FindByID(ctx, uc.DB, chatID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.ChatNotFound(chatID)
	}
	if err != nil {
		return apperror.Store(err)
	}

	// 2. resolve email to a member
	member, err := uc.Validator.FindMemberByEmail(ctx, uc.DB, email)
	if err != nil {
		return err
	}
	if member == nil {
		return apperror.EmailNotFound(email)
	}

	// 3. not already joined
	joined, err := uc.Validator.IsMember(ctx, uc.DB, chatID, member.MemberID)
	if err != nil {
		return err
	}
	if joined {
		return apperror.DuplicateMembership()
	}

	// 4. insert membership
	if err := uc.ChatMemberRepository.Add(ctx, uc.DB, chatID, member.MemberID); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperror.DuplicateMembership()
		}
		uc.Logger.WithError(err).Error("Failed to add member to chat")
		return apperror.Store(err)
	}

	uc.Logger.Infof("Member %d added to chat %d by email", member.MemberID, chatID)

	// 5. fan out a newRoom notification to every device of the new member.
	// The membership is committed at this point; a failing token lookup is
	// still reported, but never undoes the insert.
	tokens, err := uc.PushTokenRepository.FindAllByMemberID(ctx, uc.DB, member.MemberID)
	if err != nil {
		uc.Logger.WithError(err).Error("Failed to load push tokens for new member")
		return apperror.Store(err)
	}

	for _, pushToken := range tokens {
		// one goroutine per token, a slow or failing device never blocks
		// the others
		go uc.Dispatcher.SendChatAction(pushToken.Token, enum.ChatActionNewRoom, chat.ChatID, chat.Name)
	}

	return nil
}

func (uc *ChatUsecaseImpl) RemoveMemberByEmail(ctx context.Context, chatID uint, email string) error {
	// 1. resolve email to a member
	member, err := uc.Validator.FindMemberByEmail(ctx, uc.DB, email)
	if err != nil {
		return err
	}
	if member == nil {
		return apperror.EmailNotFound(email)
	}

	// 2. chat exists
	exists, err := uc.Validator.ChatExists(ctx, uc.DB, chatID)
	if err != nil {
		return err
	}
	if !exists {
		return apperror.ChatNotFound(chatID)
	}

	// 3. the named member is actually in the chat
	joined, err := uc.Validator.IsMember(ctx, uc.DB, chatID, member.MemberID)
	if err != nil {
		return err
	}
	if !joined {
		return apperror.NotInChat()
	}

	// 4. delete the membership row
	if err := uc.ChatMemberRepository.Remove(ctx, uc.DB, chatID, member.MemberID); err != nil {
		uc.Logger.WithError(err).Error("Failed to remove member from chat")
		return apperror.Store(err)
	}

	uc.Logger.Infof("Member %d removed from chat %d", member.MemberID, chatID)
	return nil
}

// LeaveChat removes the caller from the chat and tears the chat down when
// the caller was the last member. Leaving a chat the caller never joined is
// a no-op, not an error.
func (uc *ChatUsecaseImpl) LeaveChat(ctx context.Context, chatID, memberID uint) (res.LeaveChatResponse, error) {
	exists, err := uc.Validator.ChatExists(ctx, uc.DB, chatID)
	if err != nil {
		return res.LeaveChatResponse{}, err
	}
	if !exists {
		return res.LeaveChatResponse{}, apperror.ChatNotFound(chatID)
	}

	// remove + count + conditional teardown run in one transaction so a
	// crash can not strand a memberless chat
	chatDeleted := false
	err = uc.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := uc.ChatMemberRepository.Remove(ctx, tx, chatID, memberID); err != nil {
			return err
		}

		remaining, err := uc.ChatMemberRepository.CountByChatID(ctx, tx, chatID)
		if err != nil {
			return err
		}

		// last one out turns off the lights
		if remaining == 0 {
			if err := uc.ChatRepository.DeleteByID(ctx, tx, chatID); err != nil {
				return err
			}
			chatDeleted = true
		}

		return nil
	})

	if err != nil {
		uc.Logger.WithError(err).Error("Failed to leave chat")
		return res.LeaveChatResponse{}, apperror.Store(err)
	}

	if chatDeleted {
		uc.Logger.Infof("Chat %d deleted after last member %d left", chatID, memberID)
	} else {
		uc.Logger.Infof("Member %d left chat %d", memberID, chatID)
	}

	return res.LeaveChatResponse{ChatID: chatID, ChatDeleted: chatDeleted}, nil
}
