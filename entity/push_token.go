package entity

type PushToken struct {
	BaseEntity
	MemberID uint   `json:"memberId" gorm:"uniqueIndex:idx_member_token;not null"`
	Token    string `json:"-" gorm:"uniqueIndex:idx_member_token;type:varchar(255);not null"`

	Member Member `json:"-" gorm:"foreignKey:MemberID;references:MemberID;constraint:OnDelete:CASCADE;"`
}
