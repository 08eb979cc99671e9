package controllers

import "errors"

// Ошибки.
var (
	ErrItemNotFound = errors.New("Item not found")        // Запись не найдена либо принадлежит другому пользователю
	ErrInternal     = errors.New("Internal server error") // Прочая ошибка
)
