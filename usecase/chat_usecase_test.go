package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chat-room-api/apperror"
	"chat-room-api/dto/req"
	"chat-room-api/enum"
)

func requireKind(t *testing.T, err error, kind apperror.Kind) {
	t.Helper()

	require.Error(t, err)
	appErr, ok := apperror.As(err)
	require.True(t, ok, "expected *apperror.AppError, got %T: %v", err, err)
	assert.Equal(t, kind, appErr.Kind)
}

func TestCreateChat(t *testing.T) {
	t.Run("missing name", func(t *testing.T) {
		env := newTestEnv(t)

		_, err := env.chatUC.CreateChat(testCtx, &req.CreateChatRequest{Name: ""})
		requireKind(t, err, apperror.KindMissingParameter)
	})

	t.Run("returns generated id", func(t *testing.T) {
		env := newTestEnv(t)

		chatResponse, err := env.chatUC.CreateChat(testCtx, &req.CreateChatRequest{Name: "Team"})
		require.NoError(t, err)
		assert.NotZero(t, chatResponse.ChatID)
		assert.Equal(t, "Team", chatResponse.Name)
	})
}

func TestAddSelfToChat(t *testing.T) {
	t.Run("chat not found", func(t *testing.T) {
		env := newTestEnv(t)
		member := env.seedMember(t, "alice", "alice@example.com")

		err := env.chatUC.AddSelfToChat(testCtx, 42, member.MemberID)
		requireKind(t, err, apperror.KindChatNotFound)
	})

	t.Run("member not found", func(t *testing.T) {
		env := newTestEnv(t)
		chat := env.seedChat(t, "Team")

		err := env.chatUC.AddSelfToChat(testCtx, chat.ChatID, 99)
		requireKind(t, err, apperror.KindMemberNotFound)
	})

	t.Run("second join is rejected and one row remains", func(t *testing.T) {
		env := newTestEnv(t)
		chat := env.seedChat(t, "Team")
		member := env.seedMember(t, "alice", "alice@example.com")

		require.NoError(t, env.chatUC.AddSelfToChat(testCtx, chat.ChatID, member.MemberID))

		err := env.chatUC.AddSelfToChat(testCtx, chat.ChatID, member.MemberID)
		requireKind(t, err, apperror.KindDuplicateMembership)
		assert.EqualValues(t, 1, env.countMemberships(t, chat.ChatID))
	})

	t.Run("no notification on self join", func(t *testing.T) {
		env := newTestEnv(t)
		chat := env.seedChat(t, "Team")
		member := env.seedMember(t, "alice", "alice@example.com")
		env.seedPushToken(t, member.MemberID, "device-1")

		require.NoError(t, env.chatUC.AddSelfToChat(testCtx, chat.ChatID, member.MemberID))
		assert.Empty(t, env.dispatcher.Calls())
	})
}

func TestAddMemberByEmail(t *testing.T) {
	t.Run("unknown email", func(t *testing.T) {
		env := newTestEnv(t)
		chat := env.seedChat(t, "Team")

		err := env.chatUC.AddMemberByEmail(testCtx, chat.ChatID, "ghost@example.com")
		requireKind(t, err, apperror.KindEmailNotFound)
	})

	t.Run("chat not found", func(t *testing.T) {
		env := newTestEnv(t)
		env.seedMember(t, "bob", "bob@example.com")

		err := env.chatUC.AddMemberByEmail(testCtx, 42, "bob@example.com")
		requireKind(t, err, apperror.KindChatNotFound)
	})

	t.Run("already joined", func(t *testing.T) {
		env := newTestEnv(t)
		chat := env.seedChat(t, "Team")
		member := env.seedMember(t, "bob", "bob@example.com")
		env.seedMembership(t, chat.ChatID, member.MemberID)

		err := env.chatUC.AddMemberByEmail(testCtx, chat.ChatID, "bob@example.com")
		requireKind(t, err, apperror.KindDuplicateMembership)
		assert.EqualValues(t, 1, env.countMemberships(t, chat.ChatID))
	})

	t.Run("notifies every device of the new member", func(t *testing.T) {
		env := newTestEnv(t)
		chat := env.seedChat(t, "Team")
		member := env.seedMember(t, "bob", "bob@example.com")
		env.seedPushToken(t, member.MemberID, "device-1")
		env.seedPushToken(t, member.MemberID, "device-2")

		require.NoError(t, env.chatUC.AddMemberByEmail(testCtx, chat.ChatID, "bob@example.com"))

		// dispatch is asynchronous, one goroutine per token
		require.Eventually(t, func() bool {
			return len(env.dispatcher.Calls()) == 2
		}, time.Second, 10*time.Millisecond)

		for _, call := range env.dispatcher.Calls() {
			assert.Equal(t, enum.ChatActionNewRoom, call.Action)
			assert.Equal(t, chat.ChatID, call.ChatID)
			assert.Equal(t, "Team", call.ChatName)
		}
	})

	t.Run("zero devices means zero dispatches and no error", func(t *testing.T) {
		env := newTestEnv(t)
		chat := env.seedChat(t, "Team")
		env.seedMember(t, "bob", "bob@example.com")

		require.NoError(t, env.chatUC.AddMemberByEmail(testCtx, chat.ChatID, "bob@example.com"))
		assert.Empty(t, env.dispatcher.Calls())
		assert.EqualValues(t, 1, env.countMemberships(t, chat.ChatID))
	})
}

func TestRemoveMemberByEmail(t *testing.T) {
	t.Run("member not in chat leaves state unchanged", func(t *testing.T) {
		env := newTestEnv(t)
		chat := env.seedChat(t, "Team")
		member := env.seedMember(t, "alice", "alice@example.com")
		env.seedMembership(t, chat.ChatID, member.MemberID)
		env.seedMember(t, "bob", "bob@example.com")

		err := env.chatUC.RemoveMemberByEmail(testCtx, chat.ChatID, "bob@example.com")
		requireKind(t, err, apperror.KindNotInChat)
		assert.EqualValues(t, 1, env.countMemberships(t, chat.ChatID))
	})

	t.Run("removes the named member", func(t *testing.T) {
		env := newTestEnv(t)
		chat := env.seedChat(t, "Team")
		alice := env.seedMember(t, "alice", "alice@example.com")
		bob := env.seedMember(t, "bob", "bob@example.com")
		env.seedMembership(t, chat.ChatID, alice.MemberID)
		env.seedMembership(t, chat.ChatID, bob.MemberID)

		require.NoError(t, env.chatUC.RemoveMemberByEmail(testCtx, chat.ChatID, "bob@example.com"))
		assert.EqualValues(t, 1, env.countMemberships(t, chat.ChatID))
	})
}

func TestLeaveChat(t *testing.T) {
	t.Run("chat persists while members remain", func(t *testing.T) {
		env := newTestEnv(t)
		chat := env.seedChat(t, "Team")
		alice := env.seedMember(t, "alice", "alice@example.com")
		bob := env.seedMember(t, "bob", "bob@example.com")
		env.seedMembership(t, chat.ChatID, alice.MemberID)
		env.seedMembership(t, chat.ChatID, bob.MemberID)

		leaveResponse, err := env.chatUC.LeaveChat(testCtx, chat.ChatID, alice.MemberID)
		require.NoError(t, err)
		assert.False(t, leaveResponse.ChatDeleted)
		assert.True(t, env.chatExists(t, chat.ChatID))
		assert.EqualValues(t, 1, env.countMemberships(t, chat.ChatID))
	})

	t.Run("last member out deletes the chat", func(t *testing.T) {
		env := newTestEnv(t)
		chat := env.seedChat(t, "Team")
		alice := env.seedMember(t, "alice", "alice@example.com")
		env.seedMembership(t, chat.ChatID, alice.MemberID)

		leaveResponse, err := env.chatUC.LeaveChat(testCtx, chat.ChatID, alice.MemberID)
		require.NoError(t, err)
		assert.True(t, leaveResponse.ChatDeleted)
		assert.False(t, env.chatExists(t, chat.ChatID))
		assert.EqualValues(t, 0, env.countMemberships(t, chat.ChatID))

		// the room is gone for everyone afterwards
		_, err = env.chatUC.ListMembers(testCtx, chat.ChatID)
		requireKind(t, err, apperror.KindChatNotFound)
	})

	t.Run("leaving a chat never joined is a no-op", func(t *testing.T) {
		env := newTestEnv(t)
		chat := env.seedChat(t, "Team")
		alice := env.seedMember(t, "alice", "alice@example.com")
		bob := env.seedMember(t, "bob", "bob@example.com")
		env.seedMembership(t, chat.ChatID, alice.MemberID)

		leaveResponse, err := env.chatUC.LeaveChat(testCtx, chat.ChatID, bob.MemberID)
		require.NoError(t, err)
		assert.False(t, leaveResponse.ChatDeleted)
		assert.True(t, env.chatExists(t, chat.ChatID))
	})
}

func TestChatRoundTrip(t *testing.T) {
	env := newTestEnv(t)
	alice := env.seedMember(t, "alice", "alice@example.com")

	chatResponse, err := env.chatUC.CreateChat(testCtx, &req.CreateChatRequest{Name: "Team"})
	require.NoError(t, err)

	require.NoError(t, env.chatUC.AddSelfToChat(testCtx, chatResponse.ChatID, alice.MemberID))

	members, err := env.chatUC.ListMembers(testCtx, chatResponse.ChatID)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, "alice@example.com", members[0].Email)
	assert.Equal(t, "alice", members[0].Username)

	chats, err := env.chatUC.ListChatsForMember(testCtx, alice.MemberID)
	require.NoError(t, err)
	require.Len(t, chats, 1)
	assert.Equal(t, chatResponse.ChatID, chats[0].ChatID)
	assert.Equal(t, "Team", chats[0].Name)
}
