package ui

// ANSI style constants for CLI output
const (
	ColorReset = "\033[0m"
	ColorBold  = "\033[1m"
	ColorDim   = "\033[2m"
)

// Convenience helpers to build styled strings.
func Bold(s string) string {
	return ColorBold + s + ColorReset
}

func Dim(s string) string {
	return ColorDim + s + ColorReset
}
