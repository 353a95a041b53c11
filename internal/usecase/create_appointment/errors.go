package create_appointment

import "errors"

var (
	// ErrShopNotFound возвращается, когда барбершоп не найден по slug
	ErrShopNotFound = errors.New("shop not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("service not found")

	// ErrBarberNotFound возвращается, когда выбранный барбер не найден
	ErrBarberNotFound = errors.New("barber not found")

	// ErrShopClosed возвращается, когда барбершоп закрыт в указанную дату
	ErrShopClosed = errors.New("shop is closed on this date")

	// ErrSlotNoLongerAvailable возвращается, когда между расчетом слотов и записью
	// появилась конфликтующая запись; клиенту предлагается выбрать другое время
	ErrSlotNoLongerAvailable = errors.New("slot is no longer available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
