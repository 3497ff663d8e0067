package entity

// ChatMember relates a member to a chat room. The composite unique index
// lets the database reject a concurrent duplicate join that slipped past
// the pre-insert check.
type ChatMember struct {
	ChatID   uint `json:"chatId" gorm:"primaryKey;autoIncrement:false;uniqueIndex:idx_chat_member"`
	MemberID uint `json:"memberId" gorm:"primaryKey;autoIncrement:false;uniqueIndex:idx_chat_member"`

	Chat   Chat   `json:"-" gorm:"foreignKey:ChatID;references:ChatID;constraint:OnDelete:CASCADE;"`
	Member Member `json:"-" gorm:"foreignKey:MemberID;references:MemberID;constraint:OnDelete:CASCADE;"`
}
