package services

import (
	"context"

	"github.com/fsdevblog/bookmarks/internal/repositories/sql"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Services struct {
	UserService     *UserService
	BookmarkService *BookmarkService
	PingService     *PingService
}

// Factory собирает сервисный слой поверх репозиториев с общим подключением.
func Factory(conn *gorm.DB, logger *logrus.Logger) *Services {
	userRepo := sql.NewUserRepo(conn, logger)
	bookmarkRepo := sql.NewBookmarkRepo(conn, logger)

	return &Services{
		UserService:     NewUserService(userRepo),
		BookmarkService: NewBookmarkService(bookmarkRepo),
		PingService:     NewPingService(&gormPinger{conn: conn}),
	}
}

// gormPinger адаптирует *gorm.DB под интерфейс Pinger.
type gormPinger struct {
	conn *gorm.DB
}

func (g *gormPinger) Ping(ctx context.Context) error {
	sqlDB, err := g.conn.DB()
	if err != nil {
		return err //nolint:wrapcheck
	}
	return sqlDB.PingContext(ctx) //nolint:wrapcheck
}
