package security

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"chat-room-api/config/common"
	"chat-room-api/entity"
)

type JWT struct {
	config *common.Config
}

func NewJWT(config *common.Config) *JWT {
	return &JWT{config: config}
}

func (j *JWT) GenerateToken(member *entity.Member) (string, error) {
	secretKey := j.config.GetJwtConfig()

	claims := jwt.MapClaims{
		"member_id": member.MemberID,
		"aud":       "chat-room-api",
		"iss":       "chat-room-api",
		"iat":       time.Now().Unix(),
		"exp":       time.Now().Add(time.Hour * 1).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	return token.SignedString(secretKey)
}

func (j *JWT) VerifyJwtToken(token string) (jwt.MapClaims, error) {
	secretKey := j.config.GetJwtConfig()

	tokenParse, err := jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return secretKey, nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := tokenParse.Claims.(jwt.MapClaims); ok && tokenParse.Valid {
		return claims, nil
	}

	return nil, err
}

func (j *JWT) GetMemberIdFromToken(token string) (uint, error) {
	claims, err := j.VerifyJwtToken(token)
	if err != nil {
		return 0, err
	}

	// numeric claims decode as float64
	memberID, ok := claims["member_id"].(float64)
	if !ok {
		return 0, jwt.ErrInvalidKey
	}

	return uint(memberID), nil
}
