package style

import (
	"fmt"

	"github.com/arthur-debert/dotf/pkg/types"
	"github.com/pterm/pterm"
)

// MarkerStyle returns the pterm style for a classification's marker
func MarkerStyle(c types.Classification) *pterm.Style {
	switch c {
	case types.Linked:
		return pterm.NewStyle(pterm.FgGreen, pterm.Bold)
	case types.Problem:
		return pterm.NewStyle(pterm.FgRed, pterm.Bold)
	default:
		return pterm.NewStyle(pterm.FgGray)
	}
}

// StatusLine renders "<marker> <name> -> <location>" with colors.
func StatusLine(c types.Classification, name, location string) string {
	return fmt.Sprintf("%s %s %s %s",
		MarkerStyle(c).Sprint(c.Marker()),
		Render("Name", name),
		Render("Muted", "->"),
		Render("Location", location),
	)
}

// ErrorText renders text in the error style.
func ErrorText(text string) string {
	return Render("Error", text)
}

// WarningText renders text in the warning style.
func WarningText(text string) string {
	return Render("Warning", text)
}
