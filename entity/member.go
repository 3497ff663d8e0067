package entity

import "time"

type Member struct {
	MemberID  uint      `json:"memberId" gorm:"primaryKey;autoIncrement"`
	Email     string    `json:"email" gorm:"unique;type:varchar(100);not null"`
	Username  string    `json:"username" gorm:"type:varchar(50);not null"`
	Password  string    `json:"-" gorm:"type:varchar(255)"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`

	Memberships []ChatMember `json:"-" gorm:"foreignKey:MemberID"`
	PushTokens  []PushToken  `json:"-" gorm:"foreignKey:MemberID"`
}
