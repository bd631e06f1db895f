package constant

// runtime.GOOS values that get a tailored mpv install hint.
const (
	Windows = "windows"
	Darwin  = "darwin"
	Linux   = "linux"
	Android = "android"
)
