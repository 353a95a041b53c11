package types

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidTimeFormat возвращается, когда строка времени не соответствует формату "HH:MM"
var ErrInvalidTimeFormat = errors.New("types: invalid time format, expected HH:MM")

// TimeString время в формате "HH:MM" (минуты с начала дня)
// Используется для хранения времени слотов и записей без привязки к дате
type TimeString string

// NewTimeString создает TimeString из time.Time (отбрасывает секунды)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format("15:04"))
}

// NewTimeStringFromString парсит строку "HH:MM" и валидирует её
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if _, err := ts.ToMinutes(); err != nil {
		return "", err
	}
	return ts, nil
}

// NewTimeStringFromMinutes создает TimeString из количества минут с начала дня
// Ожидается значение в диапазоне [0, 1440); значения вне диапазона не нормализуются,
// генерация слотов по построению не выходит за границы суток
func NewTimeStringFromMinutes(minutes int) TimeString {
	return TimeString(fmt.Sprintf("%02d:%02d", minutes/60, minutes%60))
}

// ToMinutes конвертирует "HH:MM" в минуты с начала дня
// Допускает формат "HH:MM:SS" (Postgres TIME) - секунды отбрасываются
func (t TimeString) ToMinutes() (int, error) {
	parts := strings.Split(string(t), ":")
	if len(parts) < 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, string(t))
	}

	hours, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, string(t))
	}

	minutes, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, string(t))
	}

	return hours*60 + minutes, nil
}

// AddMinutes возвращает новый TimeString со сдвигом на minutes минут вперед
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	current, err := t.ToMinutes()
	if err != nil {
		return "", err
	}
	return NewTimeStringFromMinutes(current + minutes), nil
}

// IsBefore возвращает true, если t строго раньше other
// Некорректные значения считаются "не раньше"
func (t TimeString) IsBefore(other TimeString) bool {
	a, err := t.ToMinutes()
	if err != nil {
		return false
	}
	b, err := other.ToMinutes()
	if err != nil {
		return false
	}
	return a < b
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	a, err := t.ToMinutes()
	if err != nil {
		return false
	}
	b, err := other.ToMinutes()
	if err != nil {
		return false
	}
	return a > b
}

// String возвращает строковое представление времени
func (t TimeString) String() string {
	return string(t)
}
