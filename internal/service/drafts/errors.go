package drafts

import "errors"

var (
	// ErrInvalidKey возвращается для пустого, слишком длинного или содержащего недопустимые символы ключа
	ErrInvalidKey = errors.New("drafts: invalid draft key")

	// ErrStorage возвращается при ошибках хранилища черновиков
	ErrStorage = errors.New("drafts: storage error")
)
