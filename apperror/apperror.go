package apperror

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

type Kind string

const (
	KindMissingParameter    Kind = "MISSING_PARAMETER"
	KindMalformedParameter  Kind = "MALFORMED_PARAMETER"
	KindChatNotFound        Kind = "CHAT_NOT_FOUND"
	KindMemberNotFound      Kind = "MEMBER_NOT_FOUND"
	KindEmailNotFound       Kind = "EMAIL_NOT_FOUND"
	KindDuplicateMembership Kind = "DUPLICATE_MEMBERSHIP"
	KindNotInChat           Kind = "NOT_IN_CHAT"
	KindStoreError          Kind = "STORE_ERROR"
)

// AppError is the request-local error type. The first failing check in a
// usecase short-circuits the remaining steps and this is what comes back.
type AppError struct {
	Kind       Kind
	StatusCode int
	Message    string
	Err        error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func MissingParameter(name string) *AppError {
	return &AppError{
		Kind:       KindMissingParameter,
		StatusCode: fiber.StatusBadRequest,
		Message:    fmt.Sprintf("%s is required", name),
	}
}

func MalformedParameter(name string) *AppError {
	return &AppError{
		Kind:       KindMalformedParameter,
		StatusCode: fiber.StatusBadRequest,
		Message:    fmt.Sprintf("%s must be a positive integer", name),
	}
}

func ChatNotFound(chatID uint) *AppError {
	return &AppError{
		Kind:       KindChatNotFound,
		StatusCode: fiber.StatusNotFound,
		Message:    fmt.Sprintf("chat %d does not exist", chatID),
	}
}

func MemberNotFound(memberID uint) *AppError {
	return &AppError{
		Kind:       KindMemberNotFound,
		StatusCode: fiber.StatusNotFound,
		Message:    fmt.Sprintf("member %d does not exist", memberID),
	}
}

func EmailNotFound(email string) *AppError {
	return &AppError{
		Kind:       KindEmailNotFound,
		StatusCode: fiber.StatusNotFound,
		Message:    fmt.Sprintf("no member with email %s", email),
	}
}

func DuplicateMembership() *AppError {
	return &AppError{
		Kind:       KindDuplicateMembership,
		StatusCode: fiber.StatusBadRequest,
		Message:    "user already joined",
	}
}

func NotInChat() *AppError {
	return &AppError{
		Kind:       KindNotInChat,
		StatusCode: fiber.StatusBadRequest,
		Message:    "member is not in this chat",
	}
}

// Store wraps a driver error. The underlying message is propagated to the
// caller, matching the reference behavior.
func Store(err error) *AppError {
	return &AppError{
		Kind:       KindStoreError,
		StatusCode: fiber.StatusBadRequest,
		Message:    err.Error(),
		Err:        err,
	}
}

// As unwraps err into an *AppError if there is one in the chain.
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
