package entity

import "time"

type Chat struct {
	ChatID    uint      `json:"chatId" gorm:"primaryKey;autoIncrement"`
	Name      string    `json:"name" gorm:"type:varchar(100);not null"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`

	Members  []ChatMember `json:"-" gorm:"foreignKey:ChatID;constraint:OnDelete:CASCADE;"`
	Messages []Message    `json:"-" gorm:"foreignKey:ChatID;constraint:OnDelete:CASCADE;"`
}
