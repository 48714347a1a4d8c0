package constants

const (
	AppName           = "ubizy"
	Version           = "v0.2.0"
	DefaultConfigPath = "~/.config/ubizy/ubizy.db"

	// KeyringTokenUser is the keyring account name under which the
	// assistant API token is stored.
	KeyringTokenUser = "assistant-token"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// Default times substituted when the chat extractor finds none.
	DefaultTaskTime     = "12:00"
	DefaultEventStart   = "12:00"
	DefaultEventEnd     = "13:00"
	DefaultEventHours   = 1
	AssistantThinkingMs = 1000
)
