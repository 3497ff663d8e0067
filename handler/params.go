package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"chat-room-api/apperror"
)

// parseChatID validates the chatId path parameter before anything touches
// the store: present, numeric, positive.
func parseChatID(c *fiber.Ctx) (uint, error) {
	raw := c.Params("chatId")
	if raw == "" {
		return 0, apperror.MissingParameter("chatId")
	}

	chatID, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || chatID == 0 {
		return 0, apperror.MalformedParameter("chatId")
	}

	return uint(chatID), nil
}

func callerMemberID(c *fiber.Ctx) uint {
	memberID, _ := c.Locals("member_id").(uint)
	return memberID
}
