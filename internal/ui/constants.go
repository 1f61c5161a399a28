package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconMoveUp   = "↑"
	IconMoveDown = "↓"
	IconDelete   = "✕"
	IconEdit     = "✎"
	IconAdd      = "+"
	IconWarning  = "⚠"
	IconList     = "📋"
	IconDial     = "🌐"
)

// Dialog sizing
const (
	ListCreatorDialogWidth  float32 = 520
	ListCreatorDialogHeight float32 = 560
	SpeedDialDialogWidth    float32 = 420
	SpeedDialDialogHeight   float32 = 380
)

// Sidebar window sizing
const (
	SidebarWidth  float32 = 340
	SidebarHeight float32 = 640
)

// Step list layout
const (
	StepRowMinWidth float32 = 420
	StepListHeight  float32 = 240
)

// Speed dial grid layout
const (
	DialCellWidth  float32 = 96
	DialCellHeight float32 = 72
	DialGridHeight float32 = 400

	ColorPreviewSize float32 = 28
)
