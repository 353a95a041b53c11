package profile

import "errors"

var (
	// ErrShopNotFound возвращается, когда барбершоп не найден
	ErrShopNotFound = errors.New("shop not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
