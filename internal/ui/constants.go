package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconFolder   = "📁"
	IconPrevious = "←"
	IconNext     = "→"
)

// Layout sizing
const (
	ImageMinWidth   float32 = 500
	ImageMinHeight  float32 = 400
	CaptionMinWidth float32 = 320
	SettingsDialogW float32 = 460
	SettingsDialogH float32 = 320
)

// Caption and jump inputs
const (
	CaptionEntryLines    = 3
	DefaultJumpEntryText = "1"
)
