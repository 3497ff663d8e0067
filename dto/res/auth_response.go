package res

type RegisterResponse struct {
	MemberID uint   `json:"memberId"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type LoginResponse struct {
	Token string `json:"token"`
}
