package repository

import (
	"context"

	"gorm.io/gorm"

	"chat-room-api/entity"
)

type PushTokenRepository struct {
	Repository[entity.PushToken]
}

func NewPushTokenRepository() *PushTokenRepository {
	return &PushTokenRepository{}
}

func (repository PushTokenRepository) FindAllByMemberID(ctx context.Context, db *gorm.DB, memberID uint) ([]entity.PushToken, error) {
	var tokens []entity.PushToken

	err := db.WithContext(ctx).
		Where("member_id = ?", memberID).
		Find(&tokens).Error

	if err != nil {
		return nil, err
	}

	return tokens, nil
}

// Register stores a device token for a member, once per (member, token) pair.
func (repository PushTokenRepository) Register(ctx context.Context, db *gorm.DB, memberID uint, token string) error {
	return db.WithContext(ctx).
		Where(&entity.PushToken{MemberID: memberID, Token: token}).
		FirstOrCreate(&entity.PushToken{MemberID: memberID, Token: token}).Error
}
