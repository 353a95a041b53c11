package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeeklyScheduleUnmarshalStaffArray(t *testing.T) {
	raw := `[
		{"dia": 1, "activo": true, "turnos": [{"inicio": "09:00", "fin": "14:00"}, {"inicio": "16:00", "fin": "20:00"}]},
		{"dia": 0, "activo": false, "turnos": []}
	]`

	var s WeeklySchedule
	require.NoError(t, json.Unmarshal([]byte(raw), &s))

	assert.Equal(t, ScheduleKindStaffArray, s.Kind)
	require.Len(t, s.StaffDays, 2)
	assert.Equal(t, 1, s.StaffDays[0].Dia)
	assert.True(t, s.StaffDays[0].Activo)
	require.Len(t, s.StaffDays[0].Turnos, 2)
	assert.Equal(t, "09:00", s.StaffDays[0].Turnos[0].Inicio.String())
	assert.Equal(t, "20:00", s.StaffDays[0].Turnos[1].Fin.String())
}

func TestWeeklyScheduleUnmarshalLegacyMap(t *testing.T) {
	raw := `{
		"lunes": [{"desde": "10:00", "hasta": "18:00"}],
		"sábado": [{"desde": "10:00", "hasta": "14:00"}]
	}`

	var s WeeklySchedule
	require.NoError(t, json.Unmarshal([]byte(raw), &s))

	assert.Equal(t, ScheduleKindLegacyMap, s.Kind)
	require.Contains(t, s.LegacyDays, "lunes")
	assert.Equal(t, "10:00", s.LegacyDays["lunes"][0].Desde.String())
	assert.Equal(t, "18:00", s.LegacyDays["lunes"][0].Hasta.String())
}

func TestWeeklyScheduleUnmarshalProfileHours(t *testing.T) {
	raw := `{
		"esta_abierto": true,
		"hora_apertura": "09:00",
		"hora_cierre": "19:00",
		"hora_inicio_pausa": "14:00",
		"hora_fin_pausa": "16:00"
	}`

	var s WeeklySchedule
	require.NoError(t, json.Unmarshal([]byte(raw), &s))

	assert.Equal(t, ScheduleKindProfileSingle, s.Kind)
	require.NotNil(t, s.Profile)
	assert.True(t, s.Profile.EstaAbierto)
	assert.Equal(t, "09:00", s.Profile.HoraApertura.String())
	require.NotNil(t, s.Profile.HoraInicioPausa)
	assert.Equal(t, "14:00", s.Profile.HoraInicioPausa.String())
}

func TestWeeklyScheduleUnmarshalProfileHoursWithoutPause(t *testing.T) {
	raw := `{"esta_abierto": true, "hora_apertura": "10:00", "hora_cierre": "20:00"}`

	var s WeeklySchedule
	require.NoError(t, json.Unmarshal([]byte(raw), &s))

	assert.Equal(t, ScheduleKindProfileSingle, s.Kind)
	assert.Nil(t, s.Profile.HoraInicioPausa)
	assert.Nil(t, s.Profile.HoraFinPausa)
}

func TestWeeklyScheduleUnmarshalNull(t *testing.T) {
	var s WeeklySchedule
	require.NoError(t, json.Unmarshal([]byte(`null`), &s))
	assert.Equal(t, ScheduleKindNone, s.Kind)
}

func TestWeeklyScheduleMarshalRoundTrip(t *testing.T) {
	raw := `[{"dia":2,"activo":true,"turnos":[{"inicio":"11:00","fin":"15:00"}]}]`

	var s WeeklySchedule
	require.NoError(t, json.Unmarshal([]byte(raw), &s))

	out, err := json.Marshal(s)
	require.NoError(t, err)

	var restored WeeklySchedule
	require.NoError(t, json.Unmarshal(out, &restored))
	assert.Equal(t, s.Kind, restored.Kind)
	assert.Equal(t, s.StaffDays, restored.StaffDays)
}

func TestIntervalContains(t *testing.T) {
	iv := Interval{StartMin: 540, EndMin: 1140} // 09:00-19:00

	assert.True(t, iv.Contains(540))
	assert.True(t, iv.Contains(1139))
	// Правая граница полуоткрытая
	assert.False(t, iv.Contains(1140))
	assert.False(t, iv.Contains(539))
}
