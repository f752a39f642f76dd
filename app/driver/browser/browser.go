// Package browser opens provider checkout pages in the system browser.
package browser

import (
	"fmt"
	"os/exec"
	"runtime"
)

// Opener launches URLs with the platform's default browser.
type Opener struct{}

// NewOpener creates a browser opener.
func NewOpener() *Opener {
	return &Opener{}
}

// Open hands the URL to the OS. The checkout happens entirely outside the
// app; control returns via the payment callback listener.
func (o *Opener) Open(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to open browser: %w", err)
	}
	return nil
}
