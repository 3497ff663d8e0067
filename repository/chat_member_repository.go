package repository

import (
	"context"

	"gorm.io/gorm"

	"chat-room-api/entity"
)

type ChatMemberRepository struct {
	Repository[entity.ChatMember]
}

func NewChatMemberRepository() *ChatMemberRepository {
	return &ChatMemberRepository{}
}

func (repository ChatMemberRepository) IsMember(ctx context.Context, db *gorm.DB, chatID, memberID uint) (bool, error) {
	var count int64
	err := db.WithContext(ctx).
		Model(&entity.ChatMember{}).
		Where("chat_id = ? AND member_id = ?", chatID, memberID).
		Count(&count).Error

	if err != nil {
		return false, err
	}

	return count > 0, nil
}

func (repository ChatMemberRepository) Add(ctx context.Context, db *gorm.DB, chatID, memberID uint) error {
	return db.WithContext(ctx).
		Create(&entity.ChatMember{ChatID: chatID, MemberID: memberID}).Error
}

// Remove deletes the membership row if present. No row affected is not an
// error; self-leave is idempotent for a caller who was never a member.
func (repository ChatMemberRepository) Remove(ctx context.Context, db *gorm.DB, chatID, memberID uint) error {
	return db.WithContext(ctx).
		Where("chat_id = ? AND member_id = ?", chatID, memberID).
		Delete(&entity.ChatMember{}).Error
}

func (repository ChatMemberRepository) CountByChatID(ctx context.Context, db *gorm.DB, chatID uint) (int64, error) {
	var count int64
	err := db.WithContext(ctx).
		Model(&entity.ChatMember{}).
		Where("chat_id = ?", chatID).
		Count(&count).Error

	return count, err
}
