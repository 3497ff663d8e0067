package repository

import (
	"context"

	"gorm.io/gorm"

	"chat-room-api/entity"
)

type MessageRepository struct {
	Repository[entity.Message]
}

func NewMessageRepository() *MessageRepository {
	return &MessageRepository{}
}

func (repository MessageRepository) FindAllByChatID(ctx context.Context, db *gorm.DB, chatID uint) ([]entity.Message, error) {
	var messages []entity.Message
	err := db.WithContext(ctx).
		Preload("Sender").
		Where("chat_id = ?", chatID).
		Order("created_at ASC").
		Find(&messages).Error
	return messages, err
}
