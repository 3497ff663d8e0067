package middleware

import (
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"chat-room-api/config/common"
	"chat-room-api/dto/res"
	"chat-room-api/security"
)

type Middleware struct {
	*common.Config
	*security.JWT
	Log *logrus.Logger
}

func NewMiddleware(config *common.Config, jwt *security.JWT, logger *logrus.Logger) *Middleware {
	return &Middleware{Config: config, JWT: jwt, Log: logger}
}

func (middleware *Middleware) JWTProtected(c *fiber.Ctx) error {
	secretKey := middleware.GetJwtConfig()

	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{Key: secretKey},
		ContextKey: "jwt",
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			middleware.Log.WithError(err).Error("Failed to validate JWT")
			return c.Status(fiber.StatusUnauthorized).JSON(res.ErrorResponse{
				Status:     fiber.ErrUnauthorized.Message,
				StatusCode: fiber.StatusUnauthorized,
				Error:      "Token is not valid",
			})
		},
	})(c)
}

// ExtractMemberID resolves the authenticated member from the bearer token
// and stashes it in ctx locals for the handlers downstream.
func (middleware *Middleware) ExtractMemberID(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if len(authHeader) < 8 {
		return c.Status(fiber.StatusUnauthorized).JSON(res.ErrorResponse{
			Status:     fiber.ErrUnauthorized.Message,
			StatusCode: fiber.StatusUnauthorized,
			Error:      "Missing Authorization header",
		})
	}

	token := authHeader[7:]
	memberID, err := middleware.JWT.GetMemberIdFromToken(token)

	if err != nil {
		middleware.Log.WithError(err).Error("Failed to extract member ID from token")
		return c.Status(fiber.StatusUnauthorized).JSON(res.ErrorResponse{
			Status:     fiber.ErrUnauthorized.Message,
			StatusCode: fiber.StatusUnauthorized,
			Error:      "Failed to extract member ID from token",
		})
	}

	c.Locals("member_id", memberID)
	return c.Next()
}
