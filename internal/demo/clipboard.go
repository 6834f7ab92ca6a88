package demo

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// clipboardCmd picks the platform's clipboard writer: pbcopy on macOS,
// xclip or xsel on Linux, clip.exe on Windows.
func clipboardCmd() (*exec.Cmd, error) {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("pbcopy"), nil
	case "linux":
		if _, err := exec.LookPath("xclip"); err == nil {
			return exec.Command("xclip", "-selection", "clipboard"), nil
		}
		if _, err := exec.LookPath("xsel"); err == nil {
			return exec.Command("xsel", "--clipboard", "--input"), nil
		}
		return nil, fmt.Errorf("no clipboard tool found (install xclip or xsel)")
	case "windows":
		return exec.Command("clip.exe"), nil
	}
	return nil, fmt.Errorf("unsupported platform: %s", runtime.GOOS)
}

// copyToClipboard writes text to the system clipboard.
func copyToClipboard(text string) error {
	cmd, err := clipboardCmd()
	if err != nil {
		return err
	}
	cmd.Stdin = strings.NewReader(text)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("running %s: %w", cmd.Path, err)
	}
	return nil
}
