package get_available_slots

import "errors"

var (
	// ErrShopNotFound возвращается, когда барбершоп не найден по slug
	ErrShopNotFound = errors.New("shop not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("service not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
