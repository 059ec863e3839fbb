package config

// Default values for configuration.
const (
	// Paths defaults
	DefaultInputFile     = "input.csv"
	DefaultInputXLSXFile = "input.xlsx"
	DefaultOutputFile    = "output.docx"

	// Locale defaults
	DefaultTimezone = "Europe/Kyiv"

	// Document defaults
	DefaultLinkColor     = "0000FF"
	DefaultLinkUnderline = true
	DefaultFontName      = "Calibri"
	DefaultFontSizePt    = 11

	// Logging defaults
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)
