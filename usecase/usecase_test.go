package usecase

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	"gorm.io/gorm/schema"

	"chat-room-api/entity"
	"chat-room-api/enum"
	"chat-room-api/repository"
)

// newTestDB opens an isolated in-memory store with the same naming strategy
// and error translation the real database uses.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		NamingStrategy: schema.NamingStrategy{
			TablePrefix:   "t_",
			SingularTable: true,
		},
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&entity.Member{},
		&entity.Chat{},
		&entity.ChatMember{},
		&entity.PushToken{},
		&entity.Message{},
	))

	return db
}

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// fakeDispatcher records every dispatched chat action.
type fakeDispatcher struct {
	mu    sync.Mutex
	calls []dispatchedAction
}

type dispatchedAction struct {
	Token    string
	Action   enum.ChatAction
	ChatID   uint
	ChatName string
}

func (d *fakeDispatcher) SendChatAction(token string, action enum.ChatAction, chatID uint, chatName string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.calls = append(d.calls, dispatchedAction{Token: token, Action: action, ChatID: chatID, ChatName: chatName})
}

func (d *fakeDispatcher) Calls() []dispatchedAction {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]dispatchedAction(nil), d.calls...)
}

type testEnv struct {
	db         *gorm.DB
	chatUC     ChatUsecase
	dispatcher *fakeDispatcher
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := newTestDB(t)

	chatRepo := repository.NewChatRepository()
	memberRepo := repository.NewMemberRepository()
	chatMemberRepo := repository.NewChatMemberRepository()
	pushTokenRepo := repository.NewPushTokenRepository()

	membershipValidator := NewMembershipValidator(chatRepo, memberRepo, chatMemberRepo)
	dispatcher := &fakeDispatcher{}

	chatUC := NewChatUsecase(
		chatRepo,
		chatMemberRepo,
		pushTokenRepo,
		membershipValidator,
		validator.New(),
		db,
		newTestLogger(),
		dispatcher,
	)

	return &testEnv{db: db, chatUC: chatUC, dispatcher: dispatcher}
}

func (env *testEnv) seedMember(t *testing.T, username, email string) *entity.Member {
	t.Helper()

	member := &entity.Member{Username: username, Email: email, Password: "x"}
	require.NoError(t, env.db.Create(member).Error)
	return member
}

func (env *testEnv) seedChat(t *testing.T, name string) *entity.Chat {
	t.Helper()

	chat := &entity.Chat{Name: name}
	require.NoError(t, env.db.Create(chat).Error)
	return chat
}

func (env *testEnv) seedMembership(t *testing.T, chatID, memberID uint) {
	t.Helper()

	require.NoError(t, env.db.Create(&entity.ChatMember{ChatID: chatID, MemberID: memberID}).Error)
}

func (env *testEnv) seedPushToken(t *testing.T, memberID uint, token string) {
	t.Helper()

	require.NoError(t, env.db.Create(&entity.PushToken{MemberID: memberID, Token: token}).Error)
}

func (env *testEnv) countMemberships(t *testing.T, chatID uint) int64 {
	t.Helper()

	var count int64
	require.NoError(t, env.db.Model(&entity.ChatMember{}).Where("chat_id = ?", chatID).Count(&count).Error)
	return count
}

func (env *testEnv) chatExists(t *testing.T, chatID uint) bool {
	t.Helper()

	var count int64
	require.NoError(t, env.db.Model(&entity.Chat{}).Where("chat_id = ?", chatID).Count(&count).Error)
	return count > 0
}

var testCtx = context.Background()
