package entity

type Message struct {
	BaseEntity
	Content  string `json:"content" gorm:"type:TEXT"`
	ChatID   uint   `json:"chatId" gorm:"index;not null"`
	MemberID uint   `json:"memberId" gorm:"not null"`

	Chat   Chat   `json:"-" gorm:"foreignKey:ChatID;references:ChatID"`
	Sender Member `json:"-" gorm:"foreignKey:MemberID;references:MemberID"`
}
