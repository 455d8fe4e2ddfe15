package config

import "github.com/gookit/color"

// Prefix colors, one per component logger.
const (
	ColorGreen   = color.FgGreen
	ColorBlue    = color.FgBlue
	ColorMagenta = color.FgMagenta
	ColorCyan    = color.FgCyan
	ColorYellow  = color.FgYellow
)
