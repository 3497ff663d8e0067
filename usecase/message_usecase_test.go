package usecase

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chat-room-api/apperror"
	"chat-room-api/dto/req"
	"chat-room-api/repository"
)

func newTestMessageUsecase(t *testing.T) (MessageUsecase, *testEnv) {
	t.Helper()

	env := newTestEnv(t)
	messageUC := NewMessageUsecase(
		repository.NewMessageRepository(),
		repository.NewMemberRepository(),
		NewMembershipValidator(
			repository.NewChatRepository(),
			repository.NewMemberRepository(),
			repository.NewChatMemberRepository(),
		),
		validator.New(),
		env.db,
	)
	return messageUC, env
}

func TestSendMessage(t *testing.T) {
	t.Run("content required", func(t *testing.T) {
		messageUC, env := newTestMessageUsecase(t)
		chat := env.seedChat(t, "Team")
		member := env.seedMember(t, "alice", "alice@example.com")
		env.seedMembership(t, chat.ChatID, member.MemberID)

		_, err := messageUC.SendMessage(testCtx, chat.ChatID, member.MemberID, &req.MessageRequest{Content: ""})
		requireKind(t, err, apperror.KindMissingParameter)
	})

	t.Run("chat not found", func(t *testing.T) {
		messageUC, env := newTestMessageUsecase(t)
		member := env.seedMember(t, "alice", "alice@example.com")

		_, err := messageUC.SendMessage(testCtx, 42, member.MemberID, &req.MessageRequest{Content: "hi"})
		requireKind(t, err, apperror.KindChatNotFound)
	})

	t.Run("only members post", func(t *testing.T) {
		messageUC, env := newTestMessageUsecase(t)
		chat := env.seedChat(t, "Team")
		member := env.seedMember(t, "alice", "alice@example.com")

		_, err := messageUC.SendMessage(testCtx, chat.ChatID, member.MemberID, &req.MessageRequest{Content: "hi"})
		requireKind(t, err, apperror.KindNotInChat)
	})

	t.Run("stores and echoes the message", func(t *testing.T) {
		messageUC, env := newTestMessageUsecase(t)
		chat := env.seedChat(t, "Team")
		member := env.seedMember(t, "alice", "alice@example.com")
		env.seedMembership(t, chat.ChatID, member.MemberID)

		messageResponse, err := messageUC.SendMessage(testCtx, chat.ChatID, member.MemberID, &req.MessageRequest{Content: "hello"})
		require.NoError(t, err)
		assert.NotEmpty(t, messageResponse.MessageID)
		assert.Equal(t, "hello", messageResponse.Content)
		assert.Equal(t, "alice", messageResponse.SenderName)
	})
}

func TestListMessages(t *testing.T) {
	t.Run("insertion order", func(t *testing.T) {
		messageUC, env := newTestMessageUsecase(t)
		chat := env.seedChat(t, "Team")
		member := env.seedMember(t, "alice", "alice@example.com")
		env.seedMembership(t, chat.ChatID, member.MemberID)

		for _, content := range []string{"first", "second", "third"} {
			_, err := messageUC.SendMessage(testCtx, chat.ChatID, member.MemberID, &req.MessageRequest{Content: content})
			require.NoError(t, err)
		}

		messages, err := messageUC.ListMessages(testCtx, chat.ChatID, member.MemberID)
		require.NoError(t, err)
		require.Len(t, messages, 3)
		assert.Equal(t, "first", messages[0].Content)
		assert.Equal(t, "second", messages[1].Content)
		assert.Equal(t, "third", messages[2].Content)
	})

	t.Run("non-member cannot read", func(t *testing.T) {
		messageUC, env := newTestMessageUsecase(t)
		chat := env.seedChat(t, "Team")
		member := env.seedMember(t, "alice", "alice@example.com")

		_, err := messageUC.ListMessages(testCtx, chat.ChatID, member.MemberID)
		requireKind(t, err, apperror.KindNotInChat)
	})
}
