package repository

import (
	"context"

	"gorm.io/gorm"

	"chat-room-api/entity"
)

type ChatRepository struct {
	Repository[entity.Chat]
}

func NewChatRepository() *ChatRepository {
	return &ChatRepository{}
}

func (repository ChatRepository) Exists(ctx context.Context, db *gorm.DB, chatID uint) (bool, error) {
	var count int64
	err := db.WithContext(ctx).
		Model(&entity.Chat{}).
		Where("chat_id = ?", chatID).
		Count(&count).Error

	if err != nil {
		return false, err
	}

	return count > 0, nil
}

func (repository ChatRepository) FindByID(ctx context.Context, db *gorm.DB, chatID uint) (*entity.Chat, error) {
	var chat entity.Chat
	err := db.WithContext(ctx).Where("chat_id = ?", chatID).First(&chat).Error
	if err != nil {
		return nil, err
	}
	return &chat, nil
}

func (repository ChatRepository) FindAllByMemberID(ctx context.Context, db *gorm.DB, memberID uint) ([]entity.Chat, error) {
	var chats []entity.Chat

	err := db.WithContext(ctx).
		Model(&entity.Chat{}).
		Joins("JOIN t_chat_member cm ON cm.chat_id = t_chat.chat_id").
		Where("cm.member_id = ?", memberID).
		Find(&chats).Error

	if err != nil {
		return nil, err
	}

	return chats, nil
}

func (repository ChatRepository) DeleteByID(ctx context.Context, db *gorm.DB, chatID uint) error {
	return db.WithContext(ctx).
		Where("chat_id = ?", chatID).
		Delete(&entity.Chat{}).Error
}
