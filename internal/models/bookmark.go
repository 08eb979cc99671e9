package models

import "time"

// ShortIdentifierLength длина короткого идентификатора закладки.
const ShortIdentifierLength = 8

// Bookmark структура модели хранения закладки.
// URL уникален глобально, ShortIdentifier уникален в рамках всей таблицы.
type Bookmark struct {
	ID              uint      `gorm:"primarykey"          json:"id"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
	URL             string    `gorm:"uniqueIndex;size:512" json:"url"`
	Body            string    `json:"body"`
	ShortIdentifier string    `gorm:"uniqueIndex;size:8"  json:"shortIdentifier"`
	UserID          uint      `gorm:"index"               json:"userID"`
	Visits          uint      `json:"visits"`
}
