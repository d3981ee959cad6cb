// pkg/console/console.go
package console

import (
	"os"

	"github.com/mitchellh/colorstring"
	"github.com/schollz/progressbar/v3"
)

// PrintTask prints a top-level task header
func PrintTask(msg string) {
	colorstring.Printf("[blue][bold]==>[default] %s\n", msg)
}

// PrintSubtask prints a nested step under the current task
func PrintSubtask(msg string) {
	colorstring.Printf("[green][bold]  ->[reset] %s\n", msg)
}

// PrintWarning prints a non-fatal warning
func PrintWarning(msg string) {
	colorstring.Printf("[yellow][bold]  ->[reset] %s\n", msg)
}

// PrintError prints an error line
func PrintError(msg string) {
	colorstring.Printf("[red][bold]  ->[reset] %s\n", msg)
}

// ProgressBar returns a byte progress bar for downloads and copies.
// On CI the bar is hidden because the control codes garble the log.
func ProgressBar(length int64, desc string) *progressbar.ProgressBar {
	if os.Getenv("CI") == "true" {
		return progressbar.NewOptions64(length, progressbar.OptionSetVisibility(false))
	}

	return progressbar.DefaultBytes(length, desc)
}
