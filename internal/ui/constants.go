package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconFolder   = "📁"
	IconHistory  = "🕘"
)

// Window sizing
const (
	WindowWidth  float32 = 600
	WindowHeight float32 = 500

	LogMinHeight float32 = 160
	LogoSize     float32 = 32

	SettingsDialogWidth  float32 = 500
	SettingsDialogHeight float32 = 300
	HistoryDialogWidth   float32 = 640
	HistoryDialogHeight  float32 = 420
)

// Log view
const (
	// MaxLogLines bounds the log view; older lines are dropped first
	MaxLogLines = 1000
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	HistoryTimeLayout  = "2006-01-02 15:04"
)
