package resolve

import "github.com/pterm/pterm"

// Styled printers for consistent output.
var (
	subHeaderStyle = pterm.NewStyle(pterm.FgYellow, pterm.Bold)
	accentStyle    = pterm.NewStyle(pterm.FgMagenta, pterm.Bold)
	pathStyle      = pterm.NewStyle(pterm.FgCyan)
	dimStyle       = pterm.NewStyle(pterm.FgGray)
	okStyle        = pterm.NewStyle(pterm.FgGreen)
	errStyle       = pterm.NewStyle(pterm.FgRed)
)

func subHeader(text string) string { return subHeaderStyle.Sprint(text) }

func accent(text string) string { return accentStyle.Sprint(text) }

func stylePath(text string) string { return pathStyle.Sprint(text) }

func dim(text string) string { return dimStyle.Sprint(text) }

func okText(text string) string { return okStyle.Sprint(text) }

func errText(text string) string { return errStyle.Sprint(text) }
