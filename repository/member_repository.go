package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"chat-room-api/entity"
)

type MemberRepository struct {
	Repository[entity.Member]
}

func NewMemberRepository() *MemberRepository {
	return &MemberRepository{}
}

func (repository MemberRepository) ExistsByID(ctx context.Context, db *gorm.DB, memberID uint) (bool, error) {
	var count int64
	err := db.WithContext(ctx).
		Model(&entity.Member{}).
		Where("member_id = ?", memberID).
		Count(&count).Error

	if err != nil {
		return false, err
	}

	return count > 0, nil
}

func (repository MemberRepository) FindByID(ctx context.Context, db *gorm.DB, memberID uint) (*entity.Member, error) {
	var member entity.Member
	err := db.WithContext(ctx).Where("member_id = ?", memberID).First(&member).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// FindByEmail returns nil without error when no member carries the email,
// so callers can distinguish "not found" from a store failure.
func (repository MemberRepository) FindByEmail(ctx context.Context, db *gorm.DB, email string) (*entity.Member, error) {
	var member entity.Member
	err := db.WithContext(ctx).Where("email = ?", email).First(&member).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &member, nil
}

func (repository MemberRepository) FindAllByChatID(ctx context.Context, db *gorm.DB, chatID uint) ([]entity.Member, error) {
	var members []entity.Member

	err := db.WithContext(ctx).
		Model(&entity.Member{}).
		Joins("JOIN t_chat_member cm ON cm.member_id = t_member.member_id").
		Where("cm.chat_id = ?", chatID).
		Find(&members).Error

	if err != nil {
		return nil, err
	}

	return members, nil
}
