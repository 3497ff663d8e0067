package req

type PushTokenRequest struct {
	Token string `json:"token" validate:"required"`
}
