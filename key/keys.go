// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Media Playback - these keys configure the external mpv process acting as the host media element.
const (
	PlayerBinary    = "player.binary"
	PlayerVolumeMax = "player.volume_max"
	PlayerResume    = "player.resume"
	PlayerChapters  = "player.chapters"
)

// Seeking - these keys tune the transport controls and their debounce windows (milliseconds).
const (
	SeekJumpSmall         = "seek.jump_small"
	SeekJumpLarge         = "seek.jump_large"
	SeekHideControlsAfter = "seek.hide_controls_after"
	SeekToggleDebounce    = "seek.toggle_debounce"
)

// Subtitles - these keys govern sibling subtitle discovery.
const (
	SubtitlesEnable     = "subtitles.enable"
	SubtitlesExtensions = "subtitles.extensions"
)

// History Tracking - these keys configure the persistence of resume positions.
const (
	HistorySave = "history.save"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Terminal User Interface (TUI) - these keys define the control surface layout.
const (
	TUISliderWidth = "tui.slider_width"
	TUIShowHelp    = "tui.show_help"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern the non-TUI application behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
