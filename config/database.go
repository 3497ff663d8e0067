package config

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"

	"chat-room-api/config/common"
	"chat-room-api/config/logger"
	"chat-room-api/entity"
)

type DBConfig struct {
	*gorm.DB
	*logger.AppLogger
}

func NewDB(config *common.Config, log *logger.AppLogger) *DBConfig {
	db := initDatabase(config, log)
	return &DBConfig{DB: db, AppLogger: log}
}

func (db *DBConfig) GetDB() *gorm.DB {
	return db.DB
}

func initDatabase(cfg *common.Config, log *logger.AppLogger) *gorm.DB {
	dbHost, dbUser, dbPassword, dbName, dbPort := cfg.GetDatabaseConfig()
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		dbHost, dbUser, dbPassword, dbName, dbPort,
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		NamingStrategy: schema.NamingStrategy{
			TablePrefix:   "t_",
			SingularTable: true,
		},
		// duplicate key violations must come back as gorm.ErrDuplicatedKey
		// so the join flow can report them as "already joined"
		TranslateError: true,
	})
	if err != nil {
		log.Store.Error.Error().Err(err).Msg("failed to connect to database")
	}

	log.Store.Info.Info().Msg("Connection opened to database")
	conn, err := db.DB()
	if err != nil {
		panic("failed to connect database")
	}

	var member entity.Member
	var chat entity.Chat
	var chatMember entity.ChatMember
	var pushToken entity.PushToken
	var message entity.Message
	if err := db.AutoMigrate(&member, &chat, &chatMember, &pushToken, &message); err != nil {
		panic("failed run migration")
	}

	conn.SetMaxIdleConns(10)
	conn.SetMaxOpenConns(100)
	conn.SetConnMaxLifetime(time.Second * time.Duration(300))
	return db
}
