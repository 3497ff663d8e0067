package usecase

import (
	"context"

	"gorm.io/gorm"

	"chat-room-api/apperror"
	"chat-room-api/entity"
	"chat-room-api/repository"
)

// MembershipValidator bundles the read checks the chat lifecycle runs before
// every mutation. Each check is independently callable and touches nothing;
// a failing query comes back as a StoreError.
type MembershipValidator struct {
	chatRepo       *repository.ChatRepository
	memberRepo     *repository.MemberRepository
	chatMemberRepo *repository.ChatMemberRepository
}

func NewMembershipValidator(chatRepo *repository.ChatRepository, memberRepo *repository.MemberRepository, chatMemberRepo *repository.ChatMemberRepository) *MembershipValidator {
	return &MembershipValidator{
		chatRepo:       chatRepo,
		memberRepo:     memberRepo,
		chatMemberRepo: chatMemberRepo,
	}
}

func (v *MembershipValidator) ChatExists(ctx context.Context, db *gorm.DB, chatID uint) (bool, error) {
	exists, err := v.chatRepo.Exists(ctx, db, chatID)
	if err != nil {
		return false, apperror.Store(err)
	}
	return exists, nil
}

func (v *MembershipValidator) MemberExistsByID(ctx context.Context, db *gorm.DB, memberID uint) (bool, error) {
	exists, err := v.memberRepo.ExistsByID(ctx, db, memberID)
	if err != nil {
		return false, apperror.Store(err)
	}
	return exists, nil
}

// FindMemberByEmail resolves an email to a member, nil when unknown.
func (v *MembershipValidator) FindMemberByEmail(ctx context.Context, db *gorm.DB, email string) (*entity.Member, error) {
	member, err := v.memberRepo.FindByEmail(ctx, db, email)
	if err != nil {
		return nil, apperror.Store(err)
	}
	return member, nil
}

func (v *MembershipValidator) IsMember(ctx context.Context, db *gorm.DB, chatID, memberID uint) (bool, error) {
	joined, err := v.chatMemberRepo.IsMember(ctx, db, chatID, memberID)
	if err != nil {
		return false, apperror.Store(err)
	}
	return joined, nil
}
