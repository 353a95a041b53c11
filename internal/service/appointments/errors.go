package appointments

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrShopNotFound возвращается, когда барбершоп не найден
	ErrShopNotFound = errors.New("shop not found")

	// ErrAlreadyCancelled возвращается при попытке отменить уже отмененную запись
	ErrAlreadyCancelled = errors.New("appointment is already cancelled")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
