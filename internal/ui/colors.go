package ui

// Color helpers return the escape code of the active theme for each role, or
// "" when colors are disabled.

// ColorReset returns the reset code.
func ColorReset() string { return GetCurrentTheme().Reset }

// ColorBold returns the bold code.
func ColorBold() string { return GetCurrentTheme().Bold }

// ColorGreen returns the success color.
func ColorGreen() string { return GetCurrentTheme().Success }

// ColorRed returns the error color.
func ColorRed() string { return GetCurrentTheme().Error }

// ColorYellow returns the warning color.
func ColorYellow() string { return GetCurrentTheme().Warning }

// ColorCyan returns the primary color.
func ColorCyan() string { return GetCurrentTheme().Primary }

// ColorMagenta returns the info color.
func ColorMagenta() string { return GetCurrentTheme().Info }

// ColorDim returns the secondary color.
func ColorDim() string { return GetCurrentTheme().Secondary }
