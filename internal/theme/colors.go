package theme

import "charm.land/lipgloss/v2"

var (
	ColorWhite = lipgloss.Color("#FFFFFF")
	ColorDim   = lipgloss.Color("#666666")
)

var (
	ColorAccent  = lipgloss.Color("#FFBE98") // headings, highlighted values
	ColorSuccess = lipgloss.Color("#16EC06")
	ColorFailure = lipgloss.Color("#FF0026")
	ColorInfo    = lipgloss.Color("#67AEE6")
)
