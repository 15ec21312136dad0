package constants

const (
	AppName          = "rounds"
	DefaultConfigDir = "~/.config/rounds"
	DefaultDataPath  = "~/.config/rounds/rounds.yaml"
	DefaultKVPath    = "~/.config/rounds/overrides"
	Version          = "v0.3.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// DefaultTimezone fixes the civil timezone the roster operates in. All
	// "today" and weekday resolution happens in this zone regardless of the
	// machine's local clock.
	DefaultTimezone = "Europe/Oslo"
)

// Well-known keys under which override blobs are persisted. One JSON blob
// per override kind; a missing or corrupt blob is replaced by an empty map.
const (
	KeyVisitCompletion    = "rounds.visitCompletion"
	KeyVisitMoveOverrides = "rounds.visitMoveOverrides"
	KeyPatientPause       = "rounds.patientPause"
	KeyDevWeekdayOverride = "rounds.devWeekdayOverride"
)
