package errors

import "errors"

// Общие ошибки приложения
var (
	// ErrNotFound используется, когда запись или ресурс не найдены (пользователь, челлендж).
	ErrNotFound = errors.New("record not found")

	// ErrUnauthorized используется для ошибок аутентификации (неверный пароль, невалидный токен).
	ErrUnauthorized = errors.New("unauthorized")

	// ErrValidation используется для ошибок валидации входных данных.
	ErrValidation = errors.New("validation failed")

	// ErrConflict используется для конфликтов состояния (например, email уже зарегистрирован).
	ErrConflict = errors.New("resource state conflict")
)
