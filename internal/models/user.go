package models

import "time"

// User структура модели хранения пользователя.
// Поле Password хранит только bcrypt-хеш, в JSON не сериализуется.
type User struct {
	ID        uint      `gorm:"primarykey"           json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Username  string    `gorm:"uniqueIndex;size:80"  json:"username"`
	Email     string    `gorm:"uniqueIndex;size:120" json:"email"`
	Password  string    `gorm:"size:100"             json:"-"`
}
