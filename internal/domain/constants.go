package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// DefaultSessionMinutes длительность сессии, если период не распознан
const DefaultSessionMinutes = 60

// EndOfDayMinutes граница суток для поиска следующей сессии
const EndOfDayMinutes = 24 * 60

// Storage keys
const (
	KeyClients        = "clients"
	KeySessions       = "sessions"
	KeyCustomSlots    = "custom_slots_by_date"
	KeyBlocked        = "bloqueios_horarios"
	KeyFixedSchedules = "horarios_fixos"
	KeyManualEntries  = "manual_entries"
	// KeyLegacyTimeSlots статический недельный шаблон, больше не используется
	KeyLegacyTimeSlots = "agenda_time_slots"

	legacySessionsPrefix = "sessions_"
)

// LegacySessionsKey ключ старого раздела сессий профессионала
func LegacySessionsKey(professional string) string {
	return legacySessionsPrefix + professional
}

// CustomSlotsKey ключ набора дополнительных слотов
func CustomSlotsKey(date, professional string) string {
	return date + "_" + professional
}

// Business validation constants
const (
	MaxNotesLength       = 500
	MaxMassageTypeLength = 100
	PackageIDMin         = 100
	PackageIDMax         = 999
)

// FixedScheduleNotes заметка для сессии, созданной из фиксированного расписания
const FixedScheduleNotes = "Agendado por horário fixo"

// FixedScheduleMassageType вид массажа для сессии из фиксированного расписания
const FixedScheduleMassageType = "Massagem"
