package config

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"chat-room-api/apperror"
	"chat-room-api/config/common"
	"chat-room-api/dto/res"
)

func NewFiber(cfg *common.Config) *fiber.App {
	appName := cfg.GetAppConfig()
	return fiber.New(fiber.Config{
		Prefork:       false,
		CaseSensitive: true,
		StrictRouting: true,
		AppName:       appName,
		ErrorHandler:  ErrorHandler,
	})
}

// ErrorHandler renders the request error taxonomy. Usecases return
// *apperror.AppError, handlers just return err and land here.
func ErrorHandler(c *fiber.Ctx, err error) error {
	if appErr, ok := apperror.As(err); ok {
		return c.Status(appErr.StatusCode).JSON(res.ErrorResponse{
			Status:     string(appErr.Kind),
			StatusCode: appErr.StatusCode,
			Error:      appErr.Message,
		})
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(res.ErrorResponse{
			Status:     fiberErr.Message,
			StatusCode: fiberErr.Code,
			Error:      fiberErr.Message,
		})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(res.ErrorResponse{
		Status:     fiber.ErrInternalServerError.Message,
		StatusCode: fiber.StatusInternalServerError,
		Error:      err.Error(),
	})
}
