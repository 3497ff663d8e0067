package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chat-room-api/repository"
)

func newTestValidator(t *testing.T) (*MembershipValidator, *testEnv) {
	t.Helper()

	env := newTestEnv(t)
	membershipValidator := NewMembershipValidator(
		repository.NewChatRepository(),
		repository.NewMemberRepository(),
		repository.NewChatMemberRepository(),
	)
	return membershipValidator, env
}

func TestMembershipValidator(t *testing.T) {
	t.Run("chat exists", func(t *testing.T) {
		membershipValidator, env := newTestValidator(t)
		chat := env.seedChat(t, "Team")

		exists, err := membershipValidator.ChatExists(testCtx, env.db, chat.ChatID)
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = membershipValidator.ChatExists(testCtx, env.db, chat.ChatID+1)
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("member exists by id", func(t *testing.T) {
		membershipValidator, env := newTestValidator(t)
		member := env.seedMember(t, "alice", "alice@example.com")

		exists, err := membershipValidator.MemberExistsByID(testCtx, env.db, member.MemberID)
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = membershipValidator.MemberExistsByID(testCtx, env.db, member.MemberID+1)
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("find member by email", func(t *testing.T) {
		membershipValidator, env := newTestValidator(t)
		seeded := env.seedMember(t, "alice", "alice@example.com")

		member, err := membershipValidator.FindMemberByEmail(testCtx, env.db, "alice@example.com")
		require.NoError(t, err)
		require.NotNil(t, member)
		assert.Equal(t, seeded.MemberID, member.MemberID)

		member, err = membershipValidator.FindMemberByEmail(testCtx, env.db, "ghost@example.com")
		require.NoError(t, err)
		assert.Nil(t, member)
	})

	t.Run("is member", func(t *testing.T) {
		membershipValidator, env := newTestValidator(t)
		chat := env.seedChat(t, "Team")
		member := env.seedMember(t, "alice", "alice@example.com")

		joined, err := membershipValidator.IsMember(testCtx, env.db, chat.ChatID, member.MemberID)
		require.NoError(t, err)
		assert.False(t, joined)

		env.seedMembership(t, chat.ChatID, member.MemberID)

		joined, err = membershipValidator.IsMember(testCtx, env.db, chat.ChatID, member.MemberID)
		require.NoError(t, err)
		assert.True(t, joined)
	})
}
