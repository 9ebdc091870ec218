package repository

import "errors"

// ErrRowNotFound возвращается реализациями хранилища, когда запись
// отсутствует. Сервисы переводят его в доменный NOT_FOUND; любая другая
// ошибка считается сбоем хранилища и оборачивается как UNEXPECTED.
var ErrRowNotFound = errors.New("row not found")
