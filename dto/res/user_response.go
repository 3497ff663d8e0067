package res

type UserResponse struct {
	MemberID  uint   `json:"memberId"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	CreatedAt string `json:"createdAt"`
}
