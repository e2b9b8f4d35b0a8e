package repository

import "errors"

var (
	// ErrNotFound - запись не найдена
	ErrNotFound = errors.New("record not found")
	// ErrConflict - нарушено ограничение уникальности
	ErrConflict = errors.New("record conflicts with an existing one")
	// ErrUnavailable - хранилище не ответило вовремя; операцию можно повторить
	ErrUnavailable = errors.New("storage unavailable")
)
