package domain

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/barberlink/BL-BookingService/pkg/types"
)

// TimeRange диапазон рабочего времени в legacy-расписании (Shape A)
type TimeRange struct {
	Desde types.TimeString `json:"desde"`
	Hasta types.TimeString `json:"hasta"`
}

// Turno рабочая смена в расписании барбера (Shape B)
// Смены внутри дня не пересекаются; разрыв на обед - это две смены
type Turno struct {
	Inicio types.TimeString `json:"inicio"`
	Fin    types.TimeString `json:"fin"`
}

// DaySchedule запись расписания барбера на день недели (Shape B)
type DaySchedule struct {
	Dia    int     `json:"dia"` // 0=воскресенье .. 6=суббота
	Activo bool    `json:"activo"`
	Turnos []Turno `json:"turnos"`
}

// ProfileHours расписание из профиля барбершопа: одна смена с опциональным перерывом
// Перерыв вырезается из интервала целиком - слот не может начинаться внутри [inicio_pausa, fin_pausa)
type ProfileHours struct {
	EstaAbierto     bool              `json:"esta_abierto"`
	HoraApertura    types.TimeString  `json:"hora_apertura"`
	HoraCierre      types.TimeString  `json:"hora_cierre"`
	HoraInicioPausa *types.TimeString `json:"hora_inicio_pausa,omitempty"`
	HoraFinPausa    *types.TimeString `json:"hora_fin_pausa,omitempty"`
}

// ScheduleKind форма хранения недельного расписания
type ScheduleKind int

const (
	// ScheduleKindNone расписание отсутствует (NULL в БД)
	ScheduleKindNone ScheduleKind = iota
	// ScheduleKindLegacyMap Shape A: {"lunes": [{"desde","hasta"}], ...}
	ScheduleKindLegacyMap
	// ScheduleKindStaffArray Shape B: [{"dia","activo","turnos"}, ...]
	ScheduleKindStaffArray
	// ScheduleKindProfileSingle форма из профиля: одна смена + перерыв
	ScheduleKindProfileSingle
)

// WeeklySchedule недельное расписание в одной из трех исторических форм
// Определение формы (shape sniffing) изолировано в UnmarshalJSON -
// остальной код видит только нормализованные интервалы
type WeeklySchedule struct {
	Kind       ScheduleKind
	LegacyDays map[string][]TimeRange
	StaffDays  []DaySchedule
	Profile    *ProfileHours
}

// UnmarshalJSON определяет форму расписания по структуре JSON:
// массив - Shape B, объект с ключом hora_apertura/esta_abierto - форма профиля,
// любой другой объект - legacy-карта по названиям дней
func (s *WeeklySchedule) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)

	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*s = WeeklySchedule{Kind: ScheduleKindNone}
		return nil
	}

	if trimmed[0] == '[' {
		var days []DaySchedule
		if err := json.Unmarshal(trimmed, &days); err != nil {
			return fmt.Errorf("domain: invalid staff schedule array: %w", err)
		}
		*s = WeeklySchedule{Kind: ScheduleKindStaffArray, StaffDays: days}
		return nil
	}

	var probe map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &probe); err != nil {
		return fmt.Errorf("domain: invalid schedule object: %w", err)
	}

	_, hasApertura := probe["hora_apertura"]
	_, hasAbierto := probe["esta_abierto"]
	if hasApertura || hasAbierto {
		var hours ProfileHours
		if err := json.Unmarshal(trimmed, &hours); err != nil {
			return fmt.Errorf("domain: invalid profile hours: %w", err)
		}
		*s = WeeklySchedule{Kind: ScheduleKindProfileSingle, Profile: &hours}
		return nil
	}

	var legacy map[string][]TimeRange
	if err := json.Unmarshal(trimmed, &legacy); err != nil {
		return fmt.Errorf("domain: invalid legacy schedule map: %w", err)
	}
	*s = WeeklySchedule{Kind: ScheduleKindLegacyMap, LegacyDays: legacy}
	return nil
}

// MarshalJSON сериализует расписание обратно в его исходную форму
func (s WeeklySchedule) MarshalJSON() ([]byte, error) {
	switch s.Kind {
	case ScheduleKindStaffArray:
		return json.Marshal(s.StaffDays)
	case ScheduleKindProfileSingle:
		return json.Marshal(s.Profile)
	case ScheduleKindLegacyMap:
		return json.Marshal(s.LegacyDays)
	default:
		return []byte("null"), nil
	}
}

// Interval нормализованный открытый интервал рабочего времени в минутах с начала дня
type Interval struct {
	StartMin int
	EndMin   int
}

// Contains возвращает true, если минута minute попадает в интервал [StartMin, EndMin)
func (i Interval) Contains(minute int) bool {
	return minute >= i.StartMin && minute < i.EndMin
}
