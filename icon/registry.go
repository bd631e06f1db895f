package icon

// Icon identifies a symbol in the registry.
type Icon int

const (
	Play Icon = iota
	Pause
	Rewind
	Forward
	FullScreen
	Windowed
	Subtitles
	Volume
	Progress
	Success
	Fail
)

var icons = map[Icon]*iconDef{
	Play: {
		emoji: "▶️",
		nerd:  "",
		plain: ">",
	},
	Pause: {
		emoji: "⏸️",
		nerd:  "",
		plain: "||",
	},
	Rewind: {
		emoji: "⏪",
		nerd:  "",
		plain: "<<",
	},
	Forward: {
		emoji: "⏩",
		nerd:  "",
		plain: ">>",
	},
	FullScreen: {
		emoji: "🖥️",
		nerd:  "",
		plain: "[ ]",
	},
	Windowed: {
		emoji: "🪟",
		nerd:  "",
		plain: "[-]",
	},
	Subtitles: {
		emoji: "💬",
		nerd:  "",
		plain: "cc",
	},
	Volume: {
		emoji: "🔊",
		nerd:  "",
		plain: "vol",
	},
	Progress: {
		emoji: "⏳",
		nerd:  "",
		plain: "...",
	},
	Success: {
		emoji: "🎉",
		nerd:  "",
		plain: "ok",
	},
	Fail: {
		emoji: "💀",
		nerd:  "",
		plain: "x",
	},
}
